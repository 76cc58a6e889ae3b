package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/eventcache/internal/flagx"
	"github.com/dmitrijs2005/eventcache/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "24h" and integer nanoseconds. After
// unmarshalling, set fields are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath    string         `json:"database_path"`
	RetentionPeriod timex.Duration `json:"retention_period"`
	SweepInterval   timex.Duration `json:"sweep_interval"`
	MemoCapacity    int            `json:"memo_capacity"`
	MemoTTL         timex.Duration `json:"memo_ttl"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. Fields missing from
// the file keep their current values. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.DatabasePath != "" {
		config.DatabasePath = c.DatabasePath
	}
	if c.RetentionPeriod.Duration != 0 {
		config.RetentionPeriod = time.Duration(c.RetentionPeriod.Duration)
	}
	if c.SweepInterval.Duration != 0 {
		config.SweepInterval = time.Duration(c.SweepInterval.Duration)
	}
	if c.MemoCapacity != 0 {
		config.MemoCapacity = c.MemoCapacity
	}
	if c.MemoTTL.Duration != 0 {
		config.MemoTTL = time.Duration(c.MemoTTL.Duration)
	}
}
