// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/prd-agent/internal/archive"
	"github.com/pdiddy/prd-agent/internal/console"
	"github.com/pdiddy/prd-agent/internal/interview"
	"github.com/pdiddy/prd-agent/internal/llm"
	"github.com/pdiddy/prd-agent/internal/prd"
	"github.com/pdiddy/prd-agent/internal/secrets"
	"github.com/pdiddy/prd-agent/pkg/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a 5 Whys interview and generate a PRD",
	Long: `Interview asks a fixed opening question, then up to five generated "why"
questions probing the root problem. Answering "exit", "quit", or "done" ends
the interview early. The transcript is then synthesized into a Product
Requirements Document and written to a Markdown file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := resolveAPIKey(os.Getenv("OPENAI_API_KEY"), loadedSecrets)
		if apiKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is not set; export it or create .secrets/%s", secrets.OpenAIKeyFile)
		}

		model := stringSetting(cmd, "model", "interview.model")
		if model == "" {
			model = llm.DefaultModel
		}
		aiCfg := types.AIConfig{
			Model:   model,
			APIKey:  apiKey,
			BaseURL: stringSetting(cmd, "base-url", "interview.base_url"),
		}
		backend, err := llm.NewOpenAIBackend(aiCfg)
		if err != nil {
			return err
		}

		script := interview.DefaultScript()
		if path := stringSetting(cmd, "script", "interview.script_path"); path != "" {
			script, err = interview.LoadScript(path)
			if err != nil {
				return err
			}
		}
		script.Rounds = effectiveRounds(cmd, script)

		con := console.New(os.Stdin, os.Stdout)
		session := interview.NewSession(backend, con, script)
		if err := session.Run(cmd.Context()); err != nil {
			return fmt.Errorf("running interview: %w", err)
		}

		con.Banner("\nGenerating Product Requirements Document (PRD)... Please wait.")
		doc, err := prd.Generate(cmd.Context(), backend, session.Transcript())
		if err != nil {
			return err
		}

		output := stringSetting(cmd, "output", "generation.output_path")
		if output == "" {
			output = prd.DefaultOutputPath
		}
		if err := prd.Save(doc, output); err != nil {
			// Write failure is non-fatal: the interview and generation are done.
			con.Errorf("Error saving file: %v", err)
			return nil
		}
		con.Success("\nSuccess! PRD saved to %s", output)

		if html, _ := cmd.Flags().GetBool("html"); html || viper.GetBool("generation.html") {
			htmlPath := output + ".html"
			if err := prd.SaveHTML(doc, htmlPath); err != nil {
				con.Errorf("Error saving HTML: %v", err)
			} else {
				con.Success("HTML rendering saved to %s", htmlPath)
			}
		}

		recordDocument(cmd, doc, output, aiCfg.Model, session.CompletedRounds())
		return nil
	},
}

// recordDocument inserts an archive record for the generated document.
// Best-effort: archive failures are warnings, never fatal.
func recordDocument(cmd *cobra.Command, doc prd.Document, path, model string, rounds int) {
	store, err := archive.NewStore(archiveConfig(cmd))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open archive: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Insert(cmd.Context(), archive.Record{
		Title:  doc.Title,
		Path:   path,
		Model:  model,
		Rounds: rounds,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record document: %v\n", err)
	}
}

// resolveAPIKey returns the OpenAI credential: the environment value if set,
// falling back to the key loaded from the .secrets/ directory.
func resolveAPIKey(env string, loaded map[string]string) string {
	if env != "" {
		return env
	}
	return loaded[secrets.OpenAIKeyFile]
}

// effectiveRounds applies the --rounds flag, then the interview.rounds
// config key, on top of the script's round count.
func effectiveRounds(cmd *cobra.Command, script interview.Script) int {
	if rounds, _ := cmd.Flags().GetInt("rounds"); rounds > 0 {
		return rounds
	}
	if rounds := viper.GetInt("interview.rounds"); rounds > 0 {
		return rounds
	}
	return script.Rounds
}

// stringSetting returns the flag value if set, or the viper config value.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}

func init() {
	interviewCmd.Flags().String("model", "", "chat model identifier (default "+llm.DefaultModel+")")
	interviewCmd.Flags().String("base-url", "", "OpenAI-compatible API base URL")
	interviewCmd.Flags().Int("rounds", 0, "number of probing rounds (default 5)")
	interviewCmd.Flags().String("script", "", "path to a YAML interview script")
	interviewCmd.Flags().String("output", "", "output file for the generated PRD (default "+prd.DefaultOutputPath+")")
	interviewCmd.Flags().Bool("html", false, "also write an HTML rendering of the PRD")

	rootCmd.AddCommand(interviewCmd)
}
