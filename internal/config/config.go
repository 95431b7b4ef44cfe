package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTUserSecret string `env:"JWT_USER_SECRET"`

	// SlabTableRaw таблица ступеней комиссии в формате "порог:процент,...", пороги по возрастанию.
	SlabTableRaw string `env:"COMMISSION_SLABS"`
	// ReferralScheduleRaw множители реферальных уровней 1..4 в процентах от базовой комиссии.
	// Точные значения задает владелец системы, дефолт ниже — заготовка для разработки.
	ReferralScheduleRaw string `env:"REFERRAL_LEVELS"`

	SettlementWorkers uint `env:"SETTLEMENT_WORKERS"`
	SettlementLimit   uint `env:"SETTLEMENT_LIMIT"`

	// Разобранные на старте значения конфигурации. Ошибки формата ловятся здесь,
	// а не в момент расчета.
	Slabs    domain.SlabTable
	Schedule domain.ReferralSchedule
}

const (
	defaultSlabTable         = "0:6,1000:8,5000:10,10000:12"
	defaultReferralSchedule  = "25,10,5,2.5"
	defaultSettlementWorkers = 5
	defaultSettlementLimit   = 50
)

func LoadConfig() (*Config, error) {
	// .env опционален, в проде переменные приходят из окружения.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("JWT user secret is not set")
	}

	slabs, slabsErr := domain.ParseSlabTable(conf.SlabTableRaw)
	if slabsErr != nil {
		return nil, fmt.Errorf("load config: %w", slabsErr)
	}
	conf.Slabs = slabs

	schedule, scheduleErr := domain.ParseReferralSchedule(conf.ReferralScheduleRaw)
	if scheduleErr != nil {
		return nil, fmt.Errorf("load config: %w", scheduleErr)
	}
	conf.Schedule = schedule

	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT secret for user tokens")
	flag.StringVar(&flagConfig.SlabTableRaw, "slabs", defaultSlabTable, "Commission slab table, `threshold:percent,...`")
	flag.StringVar(&flagConfig.ReferralScheduleRaw, "levels", defaultReferralSchedule,
		"Referral level multipliers, percent of direct commission")
	flag.UintVar(&flagConfig.SettlementWorkers, "sw", defaultSettlementWorkers, "Settlement processor workers")
	flag.UintVar(&flagConfig.SettlementLimit, "sl", defaultSettlementLimit, "Settlement orders per iteration")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := Config{
		RunAddress:          defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:         defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:       defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:       defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		SlabTableRaw:        defaultIfBlank(envConfig.SlabTableRaw, flagsConfig.SlabTableRaw),
		ReferralScheduleRaw: defaultIfBlank(envConfig.ReferralScheduleRaw, flagsConfig.ReferralScheduleRaw),
		SettlementWorkers:   envConfig.SettlementWorkers,
		SettlementLimit:     envConfig.SettlementLimit,
	}
	if conf.SettlementWorkers == 0 {
		conf.SettlementWorkers = flagsConfig.SettlementWorkers
	}
	if conf.SettlementLimit == 0 {
		conf.SettlementLimit = flagsConfig.SettlementLimit
	}
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
