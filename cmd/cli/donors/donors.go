package donors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/saifulislam1431/Post-Disaster-Community-server/cmd/cli/config"
	"github.com/saifulislam1431/Post-Disaster-Community-server/cmd/cli/output"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
)

// InitDonors registers donor commands on the root command.
func InitDonors(rootCmd *cobra.Command) {
	donorsCmd := &cobra.Command{
		Use:   "donors",
		Short: "View the donor leaderboard",
	}

	donorsCmd.AddCommand(listDonorsCmd())
	rootCmd.AddCommand(donorsCmd)
}

func listDonorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List donors, highest donation first",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := http.Get(config.APIURL() + "/api/v1/donors-data-by-donation")
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("API status %d", resp.StatusCode)
			}

			var donors []models.Donor
			if err := json.NewDecoder(resp.Body).Decode(&donors); err != nil {
				return err
			}

			rows := make([][]interface{}, 0, len(donors))
			for _, d := range donors {
				rows = append(rows, []interface{}{d.ID, d.Name, d.Donation})
			}
			output.RenderTable([]string{"ID", "Name", "Donation"}, rows)
			return nil
		},
	}
}
