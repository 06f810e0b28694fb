package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoulihan/weatherfetch/internal/config"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage output templates",
	Long: `Save, delete, and set the default output template. Templates are
plain text; tokens such as |temperature| or |wind_speed| are replaced
with the corresponding report fields when rendering.`,
}

var templateSaveCmd = &cobra.Command{
	Use:   "save NAME TEMPLATE",
	Short: "Save a named output template",
	Args:  cobra.ExactArgs(2),
	RunE:  runTemplateSave,
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a named template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateDelete,
}

var templateSetDefaultCmd = &cobra.Command{
	Use:   "set-default NAME",
	Short: "Set the default template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateSetDefault,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateSaveCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	templateCmd.AddCommand(templateSetDefaultCmd)
}

func runTemplateSave(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cfg.SaveTemplate(args[0], args[1])
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Template saved.")
	return nil
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := cfg.DeleteTemplate(args[0]); err != nil {
		return fmt.Errorf("template not found")
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Template deleted.")
	return nil
}

func runTemplateSetDefault(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cfg.SetDefaultTemplate(args[0])
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Default template set.")
	return nil
}
