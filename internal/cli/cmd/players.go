package cmd

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/bnema/deskutil/internal/application/usecase"
	"github.com/bnema/deskutil/internal/cli/styles"
	"github.com/bnema/deskutil/internal/infrastructure/mpris"
)

var playersJSON bool

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List MPRIS players on the session bus",
	Long: `List every MPRIS media player on the session bus with its playback
status, marking the one nowplaying would report.`,
	Args: cobra.NoArgs,
	RunE: runPlayers,
}

func init() {
	rootCmd.AddCommand(playersCmd)
	playersCmd.Flags().BoolVar(&playersJSON, "json", false, "print the list as JSON")
}

type playerView struct {
	Name     string `json:"name"`
	BusName  string `json:"bus_name"`
	Status   string `json:"status"`
	Selected bool   `json:"selected"`
}

func runPlayers(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewListPlayersUseCase(mpris.NewFactory())
	out, err := uc.Execute(app.Ctx())
	if err != nil {
		return err
	}

	if playersJSON {
		views := make([]playerView, 0, len(out.Players))
		for i, p := range out.Players {
			views = append(views, playerView{
				Name:     p.ShortName,
				BusName:  p.BusName,
				Status:   p.Status.String(),
				Selected: i == out.Selected,
			})
		}
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("encode players: %w", err)
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	renderer := styles.NewPlayersRenderer(app.Theme)
	if len(out.Players) == 0 {
		fmt.Println(renderer.RenderEmpty())
		return nil
	}
	fmt.Println(renderer.Render(out.Players, out.Selected))
	return nil
}
