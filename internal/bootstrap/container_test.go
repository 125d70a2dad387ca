package bootstrap

import (
	"path/filepath"
	"testing"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/blob"
	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/llm"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/handler"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/Shreyaj-Padigala/ProSolve/internal/pkg/civilday"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRegister_MinimalConfig(t *testing.T) {
	inj := do.New()
	do.ProvideValue(inj, &config.Config{
		Log:      config.LogCfg{Level: "error"},
		Database: config.DBCfg{DSN: filepath.Join(t.TempDir(), "c.db"), AutoMigrate: true},
		Calendar: config.CalendarCfg{Timezone: "America/Chicago"},
		LLM:      config.LLMCfg{Provider: "mock", MockOnFail: true},
	})
	Register(inj)

	d := do.MustInvoke[*gorm.DB](inj)
	assert.True(t, d.Migrator().HasTable(&model.Task{}))
	assert.True(t, d.Migrator().HasTable(&model.Session{}))

	assert.Nil(t, do.MustInvoke[*redis.Client](inj))
	assert.Nil(t, do.MustInvoke[*blob.S3Deps](inj))
	assert.True(t, llm.IsMock(do.MustInvoke[llm.Provider](inj)))

	require.NotNil(t, do.MustInvoke[*handler.TaskHandler](inj))
	require.NotNil(t, do.MustInvoke[*handler.SessionHandler](inj))
	require.NotNil(t, do.MustInvoke[*handler.SimulateHandler](inj))
	require.NotNil(t, do.MustInvoke[*handler.SystemHandler](inj))
}

func TestRegister_BadTimezone(t *testing.T) {
	inj := do.New()
	do.ProvideValue(inj, &config.Config{
		Database: config.DBCfg{DSN: filepath.Join(t.TempDir(), "c.db")},
		Calendar: config.CalendarCfg{Timezone: "Mars/Olympus"},
	})
	Register(inj)

	_, err := do.Invoke[*civilday.Calendar](inj)
	assert.Error(t, err)
}
