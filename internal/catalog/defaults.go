package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// DefaultJobList is the display list written when seeding
const DefaultJobList = "Miner, Lumberjack, Warrior, Fisherman"

// DefaultSalary is paid to every seeded job, Unemployed included
var DefaultSalary = decimal.NewFromInt(20)

func reward(exp int, pay string) domain.Reward {
	return domain.Reward{ExpReward: exp, Pay: decimal.RequireFromString(pay)}
}

// DefaultSnapshot returns the built-in catalog used when no file exists
func DefaultSnapshot() *Snapshot {
	miner := &domain.JobDefinition{
		Name:   "Miner",
		Salary: DefaultSalary,
		Rewards: map[domain.ActionCategory]map[string]domain.Reward{
			domain.CategoryBreak: {
				"coal_ore":     reward(5, "0.25"),
				"iron_ore":     reward(10, "0.50"),
				"lapis_ore":    reward(20, "4.00"),
				"gold_ore":     reward(25, "2.50"),
				"redstone_ore": reward(25, "2.00"),
				"diamond_ore":  reward(50, "5.00"),
				"emerald_ore":  reward(50, "5.00"),
				"stone":        reward(1, "0.01"),
			},
		},
	}

	lumberjack := &domain.JobDefinition{
		Name:   "Lumberjack",
		Salary: DefaultSalary,
		Rewards: map[domain.ActionCategory]map[string]domain.Reward{
			domain.CategoryBreak: {
				"log":    reward(10, "1.00"),
				"log2":   reward(10, "1.00"),
				"leaves": reward(1, "0.01"),
			},
			domain.CategoryPlace: {
				"sapling": reward(1, "0.10"),
			},
		},
	}

	warrior := &domain.JobDefinition{
		Name:   "Warrior",
		Salary: DefaultSalary,
		Rewards: map[domain.ActionCategory]map[string]domain.Reward{
			domain.CategoryKill: {
				"zombie":   reward(10, "1.00"),
				"skeleton": reward(10, "1.00"),
				"creeper":  reward(10, "1.00"),
				"spider":   reward(10, "1.00"),
				"enderman": reward(25, "2.50"),
			},
		},
	}

	fisherman := &domain.JobDefinition{
		Name:   "Fisherman",
		Salary: DefaultSalary,
		Rewards: map[domain.ActionCategory]map[string]domain.Reward{
			domain.CategoryCatch: {
				"cod":        reward(25, "5.00"),
				"salmon":     reward(25, "5.00"),
				"clownfish":  reward(50, "10.00"),
				"pufferfish": reward(40, "7.50"),
			},
		},
	}

	unemployed := &domain.JobDefinition{
		Name:   domain.UnemployedJob,
		Salary: DefaultSalary,
	}

	return NewSnapshot(ParseJobList(DefaultJobList), domain.DefaultSalaryDelaySeconds,
		unemployed, miner, lumberjack, warrior, fisherman)
}
