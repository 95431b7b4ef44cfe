package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxReferralDepth глубина реферальной цепочки, по которой распространяются комиссии.
// Полный обход подбирает поддерево без ограничения глубины, кап касается только начислений.
const MaxReferralDepth = 4

type SlabTier struct {
	// Threshold нижняя граница накопленных продаж (включительно).
	Threshold decimal.Decimal
	// Percent ставка комиссии в процентах для этой ступени.
	Percent decimal.Decimal
}

// SlabTable упорядоченная таблица ступеней комиссии. Значение конфигурации:
// валидируется один раз на старте, Resolve после этого тотальна и детерминирована.
type SlabTable struct {
	tiers []SlabTier
}

// ParseSlabTable разбирает строку вида "0:6,1000:8,5000:10" (порог:процент, пороги по возрастанию).
// Первый порог обязан быть нулевым, иначе таблица не покрывает все значения продаж.
func ParseSlabTable(raw string) (SlabTable, error) {
	parts := strings.Split(raw, ",")
	tiers := make([]SlabTier, 0, len(parts))

	for _, part := range parts {
		threshold, percent, found := strings.Cut(strings.TrimSpace(part), ":")
		if !found {
			return SlabTable{}, fmt.Errorf("parse slab table: malformed tier `%s`", part)
		}
		t, tErr := decimal.NewFromString(threshold)
		if tErr != nil {
			return SlabTable{}, fmt.Errorf("parse slab table: threshold `%s`: %s", threshold, tErr.Error())
		}
		p, pErr := decimal.NewFromString(percent)
		if pErr != nil {
			return SlabTable{}, fmt.Errorf("parse slab table: percent `%s`: %s", percent, pErr.Error())
		}
		tiers = append(tiers, SlabTier{Threshold: t, Percent: p})
	}

	table := SlabTable{tiers: tiers}
	if err := table.validate(); err != nil {
		return SlabTable{}, err
	}
	return table, nil
}

func NewSlabTable(tiers []SlabTier) (SlabTable, error) {
	table := SlabTable{tiers: tiers}
	if err := table.validate(); err != nil {
		return SlabTable{}, err
	}
	return table, nil
}

func (t SlabTable) validate() error {
	if len(t.tiers) == 0 {
		return fmt.Errorf("slab table: no tiers configured")
	}
	if !t.tiers[0].Threshold.IsZero() {
		return fmt.Errorf("slab table: first threshold must be 0, got %s", t.tiers[0].Threshold)
	}
	for i, tier := range t.tiers {
		if tier.Percent.IsNegative() {
			return fmt.Errorf("slab table: negative percent %s at tier %d", tier.Percent, i)
		}
		if i == 0 {
			continue
		}
		if tier.Threshold.LessThanOrEqual(t.tiers[i-1].Threshold) {
			return fmt.Errorf("slab table: thresholds must ascend, tier %d breaks order", i)
		}
		// монотонность: ставка не убывает с ростом продаж
		if tier.Percent.LessThan(t.tiers[i-1].Percent) {
			return fmt.Errorf("slab table: percents must not decrease, tier %d breaks order", i)
		}
	}
	return nil
}

// Resolve возвращает ставку комиссии для накопленной суммы продаж. Граница включительна:
// продажи, равные порогу, попадают в ступень этого порога.
func (t SlabTable) Resolve(cumulativeSales decimal.Decimal) decimal.Decimal {
	rate := t.tiers[0].Percent
	for _, tier := range t.tiers[1:] {
		if cumulativeSales.LessThan(tier.Threshold) {
			break
		}
		rate = tier.Percent
	}
	return rate
}

// ReferralSchedule множители реферальных уровней 1..MaxReferralDepth, в процентах от базовой
// комиссии селлера. Точные значения — вход конфигурации, в коде не фиксируются.
type ReferralSchedule struct {
	multipliers []decimal.Decimal
}

// ParseReferralSchedule разбирает строку вида "25,10,5,2.5". Ожидается ровно
// MaxReferralDepth значений, по одному на уровень.
func ParseReferralSchedule(raw string) (ReferralSchedule, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != MaxReferralDepth {
		return ReferralSchedule{}, fmt.Errorf(
			"parse referral schedule: want %d multipliers, got %d", MaxReferralDepth, len(parts))
	}
	multipliers := make([]decimal.Decimal, len(parts))
	for i, part := range parts {
		m, err := decimal.NewFromString(strings.TrimSpace(part))
		if err != nil {
			return ReferralSchedule{}, fmt.Errorf("parse referral schedule: level %d: %s", i+1, err.Error())
		}
		if m.IsNegative() {
			return ReferralSchedule{}, fmt.Errorf("parse referral schedule: negative multiplier at level %d", i+1)
		}
		multipliers[i] = m
	}
	return ReferralSchedule{multipliers: multipliers}, nil
}

// MultiplierPercent возвращает множитель для уровня 1..MaxReferralDepth.
func (s ReferralSchedule) MultiplierPercent(level int) decimal.Decimal {
	return s.multipliers[level-1]
}

func (s ReferralSchedule) Levels() int {
	return len(s.multipliers)
}
