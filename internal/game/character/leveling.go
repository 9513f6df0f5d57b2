package character

// TotalXPForLevel returns the cumulative XP required to reach level L
// (spec §4.3): 50*(L-1)*L/2.
func TotalXPForLevel(level int) int {
	return 50 * (level - 1) * level / 2
}

// GainXP accumulates xp and advances Level while the accumulated total
// crosses each level's threshold, granting one unspent stat point per
// level gained (spec §4.3).
func (c *Character) GainXP(n int) {
	c.XP += n
	for TotalXPForLevel(c.Level+1) <= c.XP {
		c.Level++
		c.UnspentStatPoints++
	}
}

// SpendPoint spends one unspent stat point on attr, raising it by 1. If
// attr is Constitution, MaxHP also rises by 5 (spec §4.3). Returns false
// without effect if no unspent points remain.
func (c *Character) SpendPoint(attr Attribute) bool {
	if c.UnspentStatPoints <= 0 {
		return false
	}
	c.UnspentStatPoints--
	c.Attributes[attr] = c.Attribute(attr) + 1
	if attr == Constitution {
		c.MaxHP += 5
	}
	return true
}

// TrainAttribute raises attr by 1 at the cost of gold = 50*(timesTrained+1).
// Returns false without effect if the character cannot afford the cost or
// the total-training cap of 7 across all attributes has been reached
// (spec §3, §4.8). Constitution training also raises MaxHP by 5.
func (c *Character) TrainAttribute(attr Attribute) bool {
	if c.TotalTraining() >= 7 {
		return false
	}
	cost := 50 * (c.AttributeTraining[attr] + 1)
	if c.Gold < cost {
		return false
	}
	c.Gold -= cost
	c.AttributeTraining[attr]++
	c.Attributes[attr] = c.Attribute(attr) + 1
	if attr == Constitution {
		c.MaxHP += 5
	}
	return true
}

// TotalTraining returns the sum of all attribute_training counts (spec §3
// invariant: must stay <= 7).
func (c *Character) TotalTraining() int {
	total := 0
	for _, v := range c.AttributeTraining {
		total += v
	}
	return total
}
