package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bbs",
	Short: "Bar bending schedule calculator.",
	Long: `bbs computes cutting lengths, bar counts and steel weights for
reinforcement bars, offline. Bind a code profile with --profile or a
config file; everything else comes from flags or an imported workbook.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bbs.yaml)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "code profile id (is2502, bs8666)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".bbs")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BBS")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.ReadInConfig()
}

func main() {
	Execute()
}
