package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PabloGonzalezSegarra/cayene-decoder/pkg/cayene"
)

var (
	rootCmd = &cobra.Command{
		Use:   "cayene-analyze [hex]",
		Short: "Decode Cayenne LPP sensor payloads",
		Long:  "cayene-analyze decodes Cayenne LPP sensor payloads using the cayene library.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoder, err := newDecoder()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return runInteractive(decoder)
			}
			return runAnalyze(decoder, args[0])
		},
	}

	typesCmd = &cobra.Command{
		Use:   "types",
		Short: "List registered data types",
		RunE: func(cmd *cobra.Command, args []string) error {
			decoder, err := newDecoder()
			if err != nil {
				return err
			}
			for _, td := range decoder.Registry().Types() {
				origin := "extension"
				if td.Builtin {
					origin = "builtin"
				}
				fmt.Printf("0x%02X  %-16s width %d  %s\n", td.ID, td.Name, td.Width, origin)
			}
			return nil
		},
	}

	typesFile string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&typesFile, "types", "", "YAML file with extension data type definitions")
	rootCmd.AddCommand(typesCmd)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newDecoder() (*cayene.Decoder, error) {
	return cayene.NewDecoderWithOptions(cayene.Options{TypesFile: typesFile})
}

func runInteractive(decoder *cayene.Decoder) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("create readline: %w", err)
	}
	defer rl.Close()
	logrus.Info("cayene analyze mode. Paste a hex payload and press Enter (Ctrl+D to exit).")
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if err := runAnalyze(decoder, input); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
}

func runAnalyze(decoder *cayene.Decoder, hex string) error {
	result, err := decoder.DecodeHex(hex)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
