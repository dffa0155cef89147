package check

import (
	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/compare"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
)

type playerInfoFixture struct {
	ExpectedRenderName   fixture.Optional[string] `json:"expected_player_entity_render_name"`
	ExpectedPath         fixture.Optional[string] `json:"expected_player_entity_path"`
	ExpectedLevel        fixture.Optional[int]    `json:"expected_player_level"`
	ExpectedStrength     fixture.Optional[int]    `json:"expected_player_strength"`
	ExpectedIntelligence fixture.Optional[int]    `json:"expected_player_intelligence"`
	ExpectedDexterity    fixture.Optional[int]    `json:"expected_player_dexterity"`
	ExpectedName         fixture.Optional[string] `json:"expected_player_name"`
}

func playerInfo(acc snapshot.Accessor, fx *playerInfoFixture, o *outcome.Outcome) error {
	entityFields := anySet(fx.ExpectedRenderName, fx.ExpectedPath)
	componentFields := anySet(fx.ExpectedLevel, fx.ExpectedStrength, fx.ExpectedIntelligence, fx.ExpectedDexterity, fx.ExpectedName)

	if !entityFields && !componentFields {
		return nil
	}

	player, err := acc.LocalPlayer()
	if err != nil {
		return err
	}

	var c compared
	c.add(compare.Scalar("player_entity_render_name", fx.ExpectedRenderName, func() string { return player.RenderName }))
	c.add(compare.Scalar("player_entity_path", fx.ExpectedPath, func() string { return player.Path }))

	if componentFields {
		if pc, ok := player.Player(); !ok {
			c = append(c, outcome.CapabilityAbsent("player", "player component"))
		} else {
			c.add(compare.Scalar("player_level", fx.ExpectedLevel, func() int { return pc.Level }))
			c.add(compare.Scalar("player_strength", fx.ExpectedStrength, func() int { return pc.Strength }))
			c.add(compare.Scalar("player_intelligence", fx.ExpectedIntelligence, func() int { return pc.Intelligence }))
			c.add(compare.Scalar("player_dexterity", fx.ExpectedDexterity, func() int { return pc.Dexterity }))
			c.add(compare.Scalar("player_name", fx.ExpectedName, func() string { return pc.PlayerName }))
		}
	}

	o.Record("", c)

	return nil
}

type playerFlasksFixture struct {
	ExpectedFlasksCount fixture.Optional[int] `json:"expected_flasks_count"`
}

func playerFlasks(acc snapshot.Accessor, fx *playerFlasksFixture, o *outcome.Outcome) error {
	if !fx.ExpectedFlasksCount.IsSet() {
		return nil
	}

	inventories, err := acc.PlayerInventories(snapshot.InventoryFlask)
	if err != nil {
		return err
	}

	// Only the first flask inventory holds the belt.
	count := 0
	if len(inventories) > 0 {
		count = len(inventories[0].Items)
	}

	var c compared
	c.add(compare.Scalar("flasks_count", fx.ExpectedFlasksCount, func() int { return count }))
	o.Record("", c)

	return nil
}

type playerSkillsFixture struct {
	ExpectedSkillName        fixture.Optional[string] `json:"expected_skill_name"`
	ExpectedSkillUseStatus   fixture.Optional[bool]   `json:"expected_skill_use_status"`
	ExpectedUsesPer100Second fixture.Optional[int]    `json:"expected_skill_uses_per_100_seconds"`
	StatKey                  fixture.Optional[string] `json:"skill_description_to_test_key"`
	StatValue                fixture.Optional[int]    `json:"skill_description_to_test_value"`
}

func playerSkills(acc snapshot.Accessor, fx *playerSkillsFixture, o *outcome.Outcome) error {
	name, ok := fx.ExpectedSkillName.Get()
	if !ok {
		if anySet(fx.ExpectedSkillUseStatus, fx.ExpectedUsesPer100Second, fx.StatKey, fx.StatValue) {
			return structural("expected_skill_name is required to locate the skill")
		}

		return nil
	}

	skills, err := acc.SkillBar()
	if err != nil {
		return err
	}

	var (
		skill snapshot.Skill
		found bool
	)

	for _, s := range skills {
		if s.InternalName == name {
			skill, found = s, true
			break
		}
	}

	if !found {
		return structural("cannot find skill with internal name %s", name)
	}

	var c compared
	c.add(compare.Scalar("skill_use_status", fx.ExpectedSkillUseStatus, func() bool { return skill.CanBeUsed }))
	c.add(compare.Scalar("skill_uses_per_100_seconds", fx.ExpectedUsesPer100Second, func() int { return skill.HundredTimesAttacksPerSecond }))

	if key, ok := fx.StatKey.Get(); ok {
		if value, has := skill.Stat(key); !has {
			c = append(c, outcome.CapabilityAbsent("skill_stat", "stat "+key))
		} else {
			c.add(compare.Scalar("skill_stat "+key, fx.StatValue, func() int { return value }))
		}
	} else if fx.StatValue.IsSet() {
		c = append(c, outcome.Mismatch{
			Kind:    outcome.KindFixtureParse,
			Field:   "skill_description_to_test_value",
			Message: "skill_description_to_test_key is required",
		})
	}

	o.Record(name, c)

	return nil
}
