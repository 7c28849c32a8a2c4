package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_CURRENCY = "USD"
)

var ConfigStore atomic.Value

// AccountConfig seeds one account at startup. OpeningBalance is kept as a
// string so the decimal parse happens in one place, at bootstrap.
type AccountConfig struct {
	ID             string `json:"id"`
	Kind           string `json:"kind"`
	OpeningBalance string `json:"opening_balance"`
}

type UserConfig struct {
	Name     string          `json:"name"`
	Pin      string          `json:"pin"`
	Accounts []AccountConfig `json:"accounts"`
}

type Configuration struct {
	ProjectName string       `json:"project_name" envconfig:"TELLER_PROJECT_NAME"`
	Currency    string       `json:"currency" envconfig:"TELLER_CURRENCY"`
	Users       []UserConfig `json:"users"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables and defaults")
	}

	// override config from environment variables
	err = envconfig.Process("teller", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called teller.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "Teller"
	}

	if cnf.Currency == "" {
		cnf.Currency = DEFAULT_CURRENCY
	}

	// No users in the config means the canonical demo fixture.
	if len(cnf.Users) == 0 {
		log.Println("Warning: No users configured. Seeding the demo user.")
		cnf.Users = defaultUsers()
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Currency = strings.TrimSpace(cnf.Currency)
	for i := range cnf.Users {
		cnf.Users[i].Name = strings.TrimSpace(cnf.Users[i].Name)
		for j := range cnf.Users[i].Accounts {
			cnf.Users[i].Accounts[j].ID = strings.TrimSpace(cnf.Users[i].Accounts[j].ID)
			cnf.Users[i].Accounts[j].Kind = strings.TrimSpace(cnf.Users[i].Accounts[j].Kind)
		}
	}

	return nil
}

func defaultUsers() []UserConfig {
	return []UserConfig{
		{
			Name: "Alice",
			Pin:  "1234",
			Accounts: []AccountConfig{
				{ID: "CHK123", Kind: "checking", OpeningBalance: "1000.00"},
				{ID: "SAV123", Kind: "savings", OpeningBalance: "5000.00"},
			},
		},
	}
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
