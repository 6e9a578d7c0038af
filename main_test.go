package main

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"log/slog"
	"path/filepath"
	"sheetsApi/contracts"
	"testing"
)

func TestNewRootCommand(t *testing.T) {
	rootCmd := NewRootCommand()

	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Subset(t, names, []string{"serve", "export"})

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("db"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.Flags().Lookup("substitution"))
}

func TestLoadCommandConfig(t *testing.T) {
	t.Setenv("DATABASE_FILEPATH", "/tmp/env.db")
	t.Setenv("FORMULA_SUBSTITUTION", "")

	t.Run("environment without flags", func(t *testing.T) {
		cmd := NewRootCommand()
		assert.NoError(t, cmd.ParseFlags([]string{}))

		config, err := loadCommandConfig(cmd, &cliFlags{})
		assert.NoError(t, err)
		assert.Equal(t, "/tmp/env.db", config.DatabasePath)
		assert.Equal(t, SubstitutionToken, config.Substitution)
	})

	t.Run("flags override environment", func(t *testing.T) {
		cmd := NewRootCommand()
		assert.NoError(t, cmd.ParseFlags([]string{"--db", "/tmp/flag.db", "--substitution", "legacy"}))

		config, err := loadCommandConfig(cmd, &cliFlags{databasePath: "/tmp/flag.db", substitution: "legacy"})
		assert.NoError(t, err)
		assert.Equal(t, "/tmp/flag.db", config.DatabasePath)
		assert.Equal(t, SubstitutionLegacy, config.Substitution)
	})
}

func TestExportSheet(t *testing.T) {
	ctx := context.Background()

	config := DefaultConfig()
	config.DatabasePath = filepath.Join(t.TempDir(), "db.db")

	repository, dbClose := _openSheetRepository(t, config)
	_, err := repository.CreateSheet(ctx, "Sheet1")
	assert.NoError(t, err)
	_, err = repository.CreateCell(ctx, "sheet1", "var0", "10")
	assert.NoError(t, err)
	_, err = repository.CreateCell(ctx, "sheet1", "var1", "=var0+5")
	assert.NoError(t, err)
	dbClose()

	t.Run("success", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "sheet1.xlsx")

		assert.NoError(t, ExportSheet(ctx, config, "sheet1", output))

		f, err := excelize.OpenFile(output)
		assert.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("sheet1")
		assert.NoError(t, err)
		assert.Equal(t, [][]string{
			{"cell_id", "value", "result"},
			{"var0", "10", "10"},
			{"var1", "=var0+5", "15.0"},
		}, rows)
	})

	t.Run("sheet not found", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "missing.xlsx")

		err := ExportSheet(ctx, config, "missing", output)
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
		assert.NoFileExists(t, output)
	})
}

func _openSheetRepository(t *testing.T, config Config) (contracts.SheetRepository, func()) {
	serviceContainer, err := BuildServiceContainer(config, slog.Default())
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return serviceContainer.SheetRepository, func() {
		_ = serviceContainer.Database.Close()
	}
}
