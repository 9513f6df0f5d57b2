package character_test

import (
	"encoding/json"
	"testing"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	c := character.New("Ada", character.Hard, "device-1")
	c.Attributes[character.Strength] = 18
	c.HP, c.MaxHP = 30, 40
	c.Gold = 120
	c.Weapons = append(c.Weapons, item.Weapon{Name: "Sword", DamageDie: "1d8", BasePrice: 50})
	c.EquippedWeapon = 0
	c.Quests = append(c.Quests, character.Quest{TargetMonster: "Skeleton", Kind: "kill", Goal: 1, RewardGold: 40})
	c.AttributeTraining[character.Strength] = 2
	c.Companion = &character.Companion{Name: "Wolf", Tier: 1, MaxHP: 10, HP: 10, Strength: 8, AC: 12, DamageDie: "1d6"}

	rec := c.Serialize()
	got := character.Deserialize(rec)

	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Difficulty, got.Difficulty)
	assert.Equal(t, 18, got.Attribute(character.Strength))
	assert.Equal(t, 30, got.HP)
	assert.Equal(t, 40, got.MaxHP)
	assert.Equal(t, 120, got.Gold)
	require.Len(t, got.Weapons, 1)
	assert.Equal(t, "Sword", got.Weapons[0].Name)
	assert.Equal(t, 0, got.EquippedWeapon)
	require.Len(t, got.Quests, 1)
	assert.Equal(t, "Skeleton", got.Quests[0].TargetMonster)
	assert.Equal(t, 2, got.AttributeTraining[character.Strength])
	require.NotNil(t, got.Companion)
	assert.Equal(t, "Wolf", got.Companion.Name)
}

// A SaveStore marshals a Record to JSON and unmarshals it back before
// Deserialize ever sees it, which decodes every nested object/array as
// map[string]any/[]any rather than the named Record/[]Record types.
func TestSerializeDeserialize_SurvivesJSONRoundTrip(t *testing.T) {
	c := character.New("Ada", character.Hard, "device-1")
	c.Attributes[character.Strength] = 18
	c.Weapons = append(c.Weapons, item.Weapon{Name: "Sword", DamageDie: "1d8", BasePrice: 50})
	c.Armors = append(c.Armors, item.Armor{Name: "Plate", ArmorClass: 18, BasePrice: 200})
	c.Rings = append(c.Rings, item.Ring{Name: "Ring of Vigor", Attribute: "strength", Bonus: 2})
	c.Quests = append(c.Quests, character.Quest{TargetMonster: "Skeleton", Kind: "kill", Goal: 1, RewardGold: 40})
	c.AttributeTraining[character.Strength] = 2
	c.PotionUses["healing"] = 3
	c.SpellUses["fireball"] = 1
	c.Companion = &character.Companion{Name: "Wolf", Tier: 1, MaxHP: 10, HP: 10, Strength: 8, AC: 12, DamageDie: "1d6"}

	payload, err := json.Marshal(c.Serialize())
	require.NoError(t, err)

	var rec character.Record
	require.NoError(t, json.Unmarshal(payload, &rec))

	got := character.Deserialize(rec)

	assert.Equal(t, 18, got.Attribute(character.Strength))
	require.Len(t, got.Weapons, 1)
	assert.Equal(t, "Sword", got.Weapons[0].Name)
	require.Len(t, got.Armors, 1)
	assert.Equal(t, "Plate", got.Armors[0].Name)
	require.Len(t, got.Rings, 1)
	assert.Equal(t, "Ring of Vigor", got.Rings[0].Name)
	require.Len(t, got.Quests, 1)
	assert.Equal(t, "Skeleton", got.Quests[0].TargetMonster)
	assert.Equal(t, 2, got.AttributeTraining[character.Strength])
	assert.Equal(t, 3, got.PotionUses["healing"])
	assert.Equal(t, 1, got.SpellUses["fireball"])
	require.NotNil(t, got.Companion)
	assert.Equal(t, "Wolf", got.Companion.Name)
}

func TestDeserialize_MissingKeysDefault(t *testing.T) {
	got := character.Deserialize(character.Record{"name": "Ada"})

	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, 1, got.Level)
	assert.Equal(t, -1, got.EquippedWeapon)
	assert.Equal(t, -1, got.EquippedArmor)
	assert.Equal(t, 0, got.Gold)
	assert.Nil(t, got.Companion)
}

func TestDeserialize_UnknownKeysIgnored(t *testing.T) {
	got := character.Deserialize(character.Record{
		"name":              "Ada",
		"some_future_field": "unrecognized",
	})
	assert.Equal(t, "Ada", got.Name)
}
