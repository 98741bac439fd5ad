package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	LogFormat                                string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	DefaultAlgorithm                         string
	MaxBurst                                 int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{5, 8})
	v.SetDefault("scheduler.default_algorithm", "rr")
	v.SetDefault("scheduler.max_burst", 1000)
}

// Load reads the scheduler configuration. With an empty path it looks for
// config.yaml in the working directory and falls back to defaults when there
// is none; an explicit path must exist. SCHEDSIM_* environment variables
// override file values, e.g. SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SCHEDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		LogLevel:                                 v.GetString("log.level"),
		LogFormat:                                v.GetString("log.format"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
		DefaultAlgorithm:                         v.GetString("scheduler.default_algorithm"),
		MaxBurst:                                 v.GetInt("scheduler.max_burst"),
	}
	if config.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", config.RoundRobinTimeQuantum)
	}
	if len(config.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return nil, fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum must not be empty")
	}
	for _, quantum := range config.MultilevelFeedbackQueueLevelsTimeQuantum {
		if quantum <= 0 {
			return nil, fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum must be positive, got %v", config.MultilevelFeedbackQueueLevelsTimeQuantum)
		}
	}
	if config.MaxBurst <= 0 {
		return nil, fmt.Errorf("scheduler.max_burst must be positive, got %d", config.MaxBurst)
	}
	return config, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *SchedulerConfig {
	return &SchedulerConfig{
		Port:                                     9095,
		LogLevel:                                 "info",
		LogFormat:                                "text",
		RoundRobinTimeQuantum:                    2,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{5, 8},
		DefaultAlgorithm:                         "rr",
		MaxBurst:                                 1000,
	}
}
