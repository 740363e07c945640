package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Kyle-Ross/Daily-Data-Check-Push-Notifier/internal/utils"
	"github.com/Kyle-Ross/Daily-Data-Check-Push-Notifier/pkg/audit"
	"github.com/Kyle-Ross/Daily-Data-Check-Push-Notifier/pkg/gsheet"
	"github.com/Kyle-Ross/Daily-Data-Check-Push-Notifier/pkg/pushbullet"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the missing/duplicate date audit once and send any notices",
	Run: func(cmd *cobra.Command, args []string) {
		projectName := viper.GetString("project_name")
		startDate := viper.GetString("start_date")
		dateExceptions := viper.GetStringSlice("date_exceptions")
		dupeThreshold := viper.GetInt("dupe_threshold")
		trackerURL := viper.GetString("tracker_url")
		apiKey := viper.GetString("sheets.api_key")
		spreadsheetID := viper.GetString("sheets.spreadsheet_id")
		cellRange := viper.GetString("sheets.range")
		userToken := viper.GetString("pushbullet.user_token")
		adminToken := viper.GetString("pushbullet.admin_token")

		if apiKey == "" || spreadsheetID == "" || cellRange == "" {
			utils.Log.Fatal("sheets.api_key, sheets.spreadsheet_id and sheets.range must be set")
		}
		if userToken == "" || adminToken == "" {
			utils.Log.Fatal("pushbullet.user_token and pushbullet.admin_token must be set")
		}
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			utils.Log.Fatal("start_date must be a YYYY-MM-DD date: ", err)
		}
		for _, s := range dateExceptions {
			if _, err := time.Parse("2006-01-02", s); err != nil {
				utils.Log.Fatal("date_exceptions entries must be YYYY-MM-DD dates: ", err)
			}
		}
		if dupeThreshold < 2 {
			utils.Log.Fatal("dupe_threshold must be at least 2")
		}

		now := time.Now()
		result := audit.Run(gsheet.NewClient(apiKey), audit.Config{
			SpreadsheetID:  spreadsheetID,
			CellRange:      cellRange,
			StartDate:      startDate,
			DateExceptions: dateExceptions,
			DupeThreshold:  dupeThreshold,
		}, now)

		pb := pushbullet.NewClient()
		composer := audit.Composer{ProjectName: projectName, TrackerURL: trackerURL}
		err := audit.Dispatch(pb, audit.DispatchConfig{
			UserToken:        userToken,
			AdminToken:       adminToken,
			AdminCopyMsg:     viper.GetBool("admin_copy_msg"),
			AdminAllCopyMode: viper.GetBool("admin_all_copy_mode"),
		}, composer, result, now)
		if err != nil {
			// Last-resort notice so a delivery failure is not silent.
			if pushErr := pb.Send(adminToken, projectName+" Script Error", err.Error()); pushErr != nil {
				utils.Log.Error("last-resort admin notice failed: ", pushErr)
			}
			utils.Log.Fatal("dispatch failed: ", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
