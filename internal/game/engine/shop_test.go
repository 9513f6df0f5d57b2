package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuyWeapon_DeductsGoldAndAddsItem(t *testing.T) {
	s := newTownCharacter(t, 11)
	s.Character.Gold = 100
	Dispatch(context.Background(), s, Action{ID: "shop:buy:weapon:Iron Sword"})
	require.Len(t, s.Character.Weapons, 1)
	require.Equal(t, 50, s.Character.Gold)
}

func TestBuyWeapon_RejectsWithoutEnoughGold(t *testing.T) {
	s := newTownCharacter(t, 11)
	s.Character.Gold = 10
	events := Dispatch(context.Background(), s, Action{ID: "shop:buy:weapon:Iron Sword"})
	require.Empty(t, s.Character.Weapons)
	require.Contains(t, lastEventText(events), "enough gold")
}

func TestSellItem_PaysGoldAndRemovesGear(t *testing.T) {
	s := newTownCharacter(t, 13)
	Dispatch(context.Background(), s, Action{ID: "shop:buy:weapon:Rusty Dagger"})
	require.Len(t, s.Character.Weapons, 1)
	goldAfterBuy := s.Character.Gold

	Dispatch(context.Background(), s, Action{ID: "shop:sell:weapon:0"})
	require.Empty(t, s.Character.Weapons)
	require.Greater(t, s.Character.Gold, goldAfterBuy)
}

func TestHandleGamble_ExactGuessPaysTwentyX(t *testing.T) {
	s := newTownCharacter(t, 2)
	s.Character.Gold = 100
	Dispatch(context.Background(), s, Action{ID: "town:gamble:exact"})
	events := Dispatch(context.Background(), s, Action{ID: "town:gamble:exact:10"})
	require.Contains(t, lastEventText(events), "die shows")
}

func TestHandleGamble_RejectsWithoutStake(t *testing.T) {
	s := newTownCharacter(t, 2)
	s.Character.Gold = 0
	events := Dispatch(context.Background(), s, Action{ID: "town:gamble:exact"})
	require.Contains(t, lastEventText(events), "enough gold")
}
