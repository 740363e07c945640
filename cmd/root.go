package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kyle-Ross/Daily-Data-Check-Push-Notifier/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ddcheck",
	Short: "Audits a daily-entry tracker sheet and sends push notifications.",
	Long: `ddcheck pulls the date column of a daily tracker spreadsheet, checks it
for missing and duplicated days, and pushes a notice to the tracked
person (and optionally an administrator) via Pushbullet.

It runs once and exits; schedule it externally (cron, systemd timer).`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ddcheck.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".ddcheck")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.ddcheck.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default values for all keys
	viper.SetDefault("project_name", "Default Project Name")
	viper.SetDefault("start_date", "")
	viper.SetDefault("date_exceptions", []string{})
	viper.SetDefault("dupe_threshold", 2)
	viper.SetDefault("admin_copy_msg", false)
	viper.SetDefault("admin_all_copy_mode", false)
	viper.SetDefault("tracker_url", "")
	viper.SetDefault("sheets.api_key", "")
	viper.SetDefault("sheets.spreadsheet_id", "")
	viper.SetDefault("sheets.range", "")
	viper.SetDefault("pushbullet.user_token", "")
	viper.SetDefault("pushbullet.admin_token", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
