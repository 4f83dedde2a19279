package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kabecheck/kabecheck/internal/calculation"
	"github.com/kabecheck/kabecheck/internal/config"
	"github.com/kabecheck/kabecheck/internal/output"
	"github.com/kabecheck/kabecheck/internal/server"
	"github.com/kabecheck/kabecheck/internal/walls"
)

// logrusLogger adapts a logrus logger to calculation.Logger.
type logrusLogger struct {
	log *logrus.Logger
}

func (l logrusLogger) Debugf(format string, args ...interface{}) { l.log.Debugf(format, args...) }
func (l logrusLogger) Infof(format string, args ...interface{})  { l.log.Infof(format, args...) }
func (l logrusLogger) Warnf(format string, args ...interface{})  { l.log.Warnf(format, args...) }
func (l logrusLogger) Errorf(format string, args ...interface{}) { l.log.Errorf(format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newLogger(debugMode bool) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debugMode {
		l.SetLevel(logrus.DebugLevel)
	} else if lvl, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		engine.SetLogger(logrusLogger{log: newLogger(true)})
		engine.Debug = true
	}
	return engine
}

var rootCmd = &cobra.Command{
	Use:   "kabecheck",
	Short: "収入の壁 tax and social-insurance checker",
	Long:  "Estimates Japanese income tax, resident tax and social-insurance obligations for part-time and freelance workers, and reports which income walls have been crossed.",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [profile-file]",
	Short: "Calculate taxes and wall crossings from a profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := output.ByName(outputFormat)
		if formatter == nil {
			log.Fatalf("unknown output format: %s (valid: console, json, csv)", outputFormat)
		}

		var rendered string
		switch profile.Kind {
		case "parttime":
			result := engine.CalculateParttime(profile.Parttime.ParttimeInput())
			rendered, err = formatter.FormatParttime(result)
		case "freelance":
			result := engine.CalculateFreelance(profile.Freelance.FreelanceInput())
			rendered, err = formatter.FormatFreelance(result)
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(rendered)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Validate a profile file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Profile file %s is valid\n", args[0])
	},
}

var wallsCmd = &cobra.Command{
	Use:   "walls [parttime|freelance]",
	Short: "List the income walls for an earner category",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		earner := walls.Parttime
		if len(args) > 0 {
			switch args[0] {
			case "parttime":
				earner = walls.Parttime
			case "freelance":
				earner = walls.Freelance
			default:
				log.Fatalf("unknown category %q (valid: parttime, freelance)", args[0])
			}
		}

		income, _ := cmd.Flags().GetInt64("income")

		for _, w := range walls.Table(earner) {
			marker := " "
			if income > 0 && income >= w.Amount {
				marker = "✗"
			}
			fmt.Printf("%s %d. %s（%s円）- %s\n", marker, w.Level, w.Name,
				calculation.FormatYen(w.Amount), w.Category)
			fmt.Printf("     %s\n", w.Description)
			if w.Impacts.Self != "" {
				fmt.Printf("     本人への影響: %s\n", w.Impacts.Self)
			}
			if w.Impacts.Family != "" {
				fmt.Printf("     家族への影響: %s\n", w.Impacts.Family)
			}
			for _, c := range w.Conditions {
				fmt.Printf("     - %s\n", c)
			}
			if w.Note != "" {
				fmt.Printf("     注意: %s\n", w.Note)
			}
		}

		if income > 0 {
			if next := walls.Next(income, earner); next != nil {
				fmt.Printf("\n次の壁: %s まで あと%s円\n", next.Name,
					calculation.FormatYen(next.Remaining))
			} else {
				fmt.Println("\nすべての壁を超えています。")
			}
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [profile-file]",
	Short: "Compare white vs blue filing for a freelance profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if profile.Kind != "freelance" {
			log.Fatal("compare requires a freelance profile")
		}

		in := profile.Freelance.FreelanceInput()
		comparison := calculation.CompareFilingTypes(in.AnnualRevenue, in.AnnualExpense)

		fmt.Println("青色申告 vs 白色申告")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("売上 %s円 / 経費 %s円\n\n",
			calculation.FormatYen(in.AnnualRevenue), calculation.FormatYen(in.AnnualExpense))
		fmt.Printf("%-10s 税額 %s円 / 手取り %s円\n", "白色申告",
			calculation.FormatYen(comparison.White.Tax), calculation.FormatYen(comparison.White.NetIncome))
		fmt.Printf("%-10s 税額 %s円 / 手取り %s円（節税 %s円）\n", "青色10万円",
			calculation.FormatYen(comparison.Blue10.Tax), calculation.FormatYen(comparison.Blue10.NetIncome),
			calculation.FormatYen(comparison.SavingsBlue10))
		fmt.Printf("%-10s 税額 %s円 / 手取り %s円（節税 %s円）\n", "青色65万円",
			calculation.FormatYen(comparison.Blue65.Tax), calculation.FormatYen(comparison.Blue65.NetIncome),
			calculation.FormatYen(comparison.SavingsBlue65))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators as a JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		// .env is optional; environment variables win when both exist.
		_ = godotenv.Load()

		debugMode, _ := cmd.Flags().GetBool("debug")
		logger := newLogger(debugMode)

		engine := calculation.NewEngine()
		if debugMode {
			engine.SetLogger(logrusLogger{log: logger})
			engine.Debug = true
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			if _, err := strconv.Atoi(port); err != nil {
				logger.Fatalf("invalid PORT %q", port)
			}
			addr = ":" + port
		}

		srv := server.New(engine, logger)
		if err := srv.ListenAndServe(addr); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "kabecheck %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	wallsCmd.Flags().Int64("income", 0, "Mark walls already crossed at this income")

	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	serveCmd.Flags().String("addr", "", "Listen address (default :$PORT or :8080)")
	serveCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(wallsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
