package cmd

import (
	"fmt"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			PaddingLeft(2)
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill vocabulary",
	Run: func(cmd *cobra.Command, args []string) {
		skills := domain.AllSkills()
		fmt.Println(titleStyle.Render(fmt.Sprintf("Skills (%d)", len(skills))))
		for _, s := range skills {
			fmt.Println(itemStyle.Render("• " + string(s)))
		}
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}
