/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	profileStop interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "meshgrad",
	Short: "Gradient mesh generator",
	Long: `
Builds smooth color gradients from a grid of colored control points. Each cell of the grid is
a bicubic Ferguson patch, sampled and triangulated into a vertex colored mesh that any
triangle renderer can draw.

meshgrad generate -I grid.yaml -s 4`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		var mode string
		if mode, err = cmd.Flags().GetString("profile"); err != nil {
			return
		}
		return startProfile(mode, viper.GetBool("quiet"))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profileStop != nil {
			profileStop.Stop()
			profileStop = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.meshgrad.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "write a pprof profile of the run: cpu or mem")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(err)
	}
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
		viper.SetConfigName(".meshgrad")
	}
	viper.SetEnvPrefix("meshgrad")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && !viper.GetBool("quiet") {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func startProfile(mode string, quiet bool) (err error) {
	var options []func(*profile.Profile)
	switch mode {
	case "":
		return
	case "cpu":
		options = append(options, profile.CPUProfile)
	case "mem":
		options = append(options, profile.MemProfile)
	default:
		return fmt.Errorf("unknown profile mode \"%s\", use cpu or mem", mode)
	}
	options = append(options, profile.ProfilePath("."), profile.NoShutdownHook)
	if quiet {
		options = append(options, profile.Quiet)
	}
	profileStop = profile.Start(options...)
	return
}

// report prints a progress line unless --quiet is set
func report(w io.Writer, format string, args ...interface{}) {
	if viper.GetBool("quiet") {
		return
	}
	fmt.Fprintf(w, format, args...)
}
