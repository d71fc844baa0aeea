/*
 *     Copyright 2023 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dependency

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	logger "d7y.io/logit/internal/dflog"
	"d7y.io/logit/pkg/dfpath"
)

// EnvPrefix is the environment prefix of every configuration key.
const EnvPrefix = "logit"

// InitCommandAndConfig initializes flags binding and common sub cmds.
// config is a pointer to configuration struct.
func InitCommandAndConfig(cmd *cobra.Command, useConfigFile bool, config any) {
	rootName := cmd.Root().Name()
	cobra.OnInitialize(func() {
		if err := initConfig(useConfigFile, rootName, config); err != nil {
			logger.Fatal(err)
		}
	})

	if !cmd.HasParent() {
		// Add common flags.
		flags := cmd.PersistentFlags()
		flags.Bool("console", false, "whether logger output records to the stdout")
		flags.Bool("verbose", false, "whether logger use debug level")
		flags.String("workhome", dfpath.DefaultWorkHome, "the working directory holding the config and log directories")

		if useConfigFile {
			flags.String("config", "", fmt.Sprintf("the path of configuration file with yaml extension name, default is %s, it can also be set by env var: %s",
				filepath.Join(dfpath.DefaultConfigDir, rootName+".yaml"), strings.ToUpper(EnvPrefix+"_config")))
		}

		// Bind common flags.
		if err := viper.BindPFlags(flags); err != nil {
			panic(fmt.Errorf("bind common flags to viper: %w", err))
		}

		// Add common cmds only on root cmd.
		cmd.AddCommand(VersionCmd)
	}
}

// BindPersistentFlags binds persistent flags of cmd to configuration keys.
func BindPersistentFlags(cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Errorf("bind flag %s to viper: %w", flag, err))
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig(useConfigFile bool, name string, config any) error {
	// Use config file and read once.
	if useConfigFile {
		cfgFile := viper.GetString("config")
		if cfgFile != "" {
			// Use config file from the flag.
			viper.SetConfigFile(cfgFile)
		} else {
			var options []dfpath.Option
			if workHome := viper.GetString("workhome"); workHome != "" {
				options = append(options, dfpath.WithWorkHome(workHome))
			}

			d, err := dfpath.New(options...)
			if err != nil {
				return fmt.Errorf("init dfpath: %w", err)
			}

			viper.AddConfigPath(d.ConfigDir())
			viper.SetConfigName(name)
			viper.SetConfigType("yaml")
		}

		// If a config file is found, read it in.
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if cfgFile != "" || !errors.As(err, &notFound) {
				return fmt.Errorf("read config file %s: %w", viper.ConfigFileUsed(), err)
			}
		} else {
			logger.Infof("using config file: %s", viper.ConfigFileUsed())
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(config, initDecoderConfig); err != nil {
		return fmt.Errorf("unmarshal config to struct: %w", err)
	}

	return nil
}

func initDecoderConfig(dc *mapstructure.DecoderConfig) {
	dc.TagName = "mapstructure"
	dc.WeaklyTypedInput = true
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}
