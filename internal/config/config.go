// Package config holds the audit configuration: tolerance, period label,
// and the per-table column mappings that bind logical fields to source
// column headers.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// BalanceSheetColumns maps balance sheet logical fields to column headers.
// Type is optional; rows without a recognized type are treated as assets.
type BalanceSheetColumns struct {
	Account string `yaml:"account"`
	Opening string `yaml:"opening"`
	Closing string `yaml:"closing"`
	Type    string `yaml:"type"`
}

// AccountChangesColumns maps the account change table's logical fields.
type AccountChangesColumns struct {
	Account string `yaml:"account"`
	Debit   string `yaml:"debit"`
	Credit  string `yaml:"credit"`
}

// IncomeColumns maps the income statement and income detail tables'
// logical fields. Both tables share the same shape.
type IncomeColumns struct {
	Item   string `yaml:"item"`
	Amount string `yaml:"amount"`
}

// TransactionColumns maps the transaction table's logical fields. Date and
// Voucher are optional.
type TransactionColumns struct {
	Account string `yaml:"account"`
	Debit   string `yaml:"debit"`
	Credit  string `yaml:"credit"`
	Date    string `yaml:"date"`
	Voucher string `yaml:"voucher"`
}

// Mappings collects the column mappings for all five input tables.
type Mappings struct {
	BalanceSheet    BalanceSheetColumns   `yaml:"balance_sheet"`
	AccountChanges  AccountChangesColumns `yaml:"account_changes"`
	IncomeStatement IncomeColumns         `yaml:"income_statement"`
	IncomeDetails   IncomeColumns         `yaml:"income_details"`
	Transactions    TransactionColumns    `yaml:"transactions"`
}

// Config is the top-level audit configuration.
type Config struct {
	Tolerance float64  `yaml:"tolerance"`
	Period    string   `yaml:"period"`
	Columns   Mappings `yaml:"columns"`
}

// Default returns the built-in configuration: tolerance 0.01, period
// "current period", and the conventional Chinese statement headers the
// source spreadsheets use.
func Default() *Config {
	return &Config{
		Tolerance: 0.01,
		Period:    "current period",
		Columns: Mappings{
			BalanceSheet: BalanceSheetColumns{
				Account: "科目",
				Opening: "期初余额",
				Closing: "期末余额",
				Type:    "类型",
			},
			AccountChanges: AccountChangesColumns{
				Account: "科目",
				Debit:   "借方",
				Credit:  "贷方",
			},
			IncomeStatement: IncomeColumns{
				Item:   "项目",
				Amount: "金额",
			},
			IncomeDetails: IncomeColumns{
				Item:   "项目",
				Amount: "金额",
			},
			Transactions: TransactionColumns{
				Account: "科目",
				Debit:   "借方",
				Credit:  "贷方",
				Date:    "日期",
				Voucher: "凭证号",
			},
		},
	}
}

// Load reads a YAML config file. Fields absent from the file keep their
// built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ToleranceDecimal returns the tolerance as a decimal.
func (c *Config) ToleranceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.Tolerance)
}
