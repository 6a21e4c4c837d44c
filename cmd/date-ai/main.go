// date-ai is the command line interface to the date & outing recommender.
package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/date-outing-ai/internal/catalog"
	"github.com/denisok6893-rgb/date-outing-ai/internal/domain"
	"github.com/denisok6893-rgb/date-outing-ai/internal/matching"
)

var (
	flagBudget   string
	flagWeather  string
	flagMood     string
	flagActivity string
	flagMaxHours int
	flagLimit    int
	flagFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "date-ai",
	Short: "デート＆おでかけAI: 気分に合わせたプランをおすすめします",
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [city]",
	Short: "エリアと条件に合わせたプランを探す",
	Long: `エリア（例: 東京, 京都, tokyo）と任意の条件からおすすめプランを表示します。

ローマ字の都市名は自動的に日本語表記へ変換されます。`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "利用できる予算帯の一覧を表示する",
	RunE:  runBudgets,
}

func init() {
	recommendCmd.Flags().StringVar(&flagBudget, "budget", "", "想定する予算帯 (¥〜¥プレミアム)")
	recommendCmd.Flags().StringVar(&flagWeather, "weather", "", "想定する天気 (晴れ/曇り/雨/雪)")
	recommendCmd.Flags().StringVar(&flagMood, "mood", "", "どんなムードで過ごしたいか (例: ロマンチック, アクティブ)")
	recommendCmd.Flags().StringVar(&flagActivity, "activity", "", "やりたいアクティビティの種類 (例: グルメ, アウトドア)")
	recommendCmd.Flags().IntVar(&flagMaxHours, "max-hours", 0, "確保できる最大時間 (時間数)")
	recommendCmd.Flags().IntVar(&flagLimit, "limit", 3, "表示するおすすめ件数 (デフォルト: 3)")
	recommendCmd.Flags().StringVar(&flagFormat, "format", "text", "出力形式 (text または json)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(budgetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEngine() (*matching.Engine, error) {
	cat, err := catalog.Builtin()
	if err != nil {
		return nil, err
	}
	return matching.NewEngine(cat, matching.DefaultWeights())
}

func runRecommend(_ *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	recs := engine.Recommend(domain.RecommendationRequest{
		City:             args[0],
		Budget:           flagBudget,
		Weather:          flagWeather,
		Mood:             flagMood,
		ActivityType:     flagActivity,
		MaxDurationHours: flagMaxHours,
		Limit:            flagLimit,
	})

	if flagFormat == "json" {
		return printJSON(recs)
	}
	printText(recs)
	return nil
}

// jsonRecommendation flattens the experience fields with score and rationale,
// matching the HTTP response shape.
type jsonRecommendation struct {
	domain.Experience
	Score     float64  `json:"score"`
	Rationale []string `json:"rationale"`
}

func printJSON(recs []domain.Recommendation) error {
	payload := make([]jsonRecommendation, 0, len(recs))
	for _, rec := range recs {
		payload = append(payload, jsonRecommendation{
			Experience: rec.Experience,
			Score:      rec.Score,
			Rationale:  rec.Rationale,
		})
	}

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recommendations: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

func printText(recs []domain.Recommendation) {
	if len(recs) == 0 {
		fmt.Println("条件に合うプランが見つかりませんでした。条件を緩めてみてください。")
		return
	}

	for i, rec := range recs {
		exp := rec.Experience
		fmt.Printf("[%d] %s (%s)\n", i+1, exp.Title, exp.City)
		fmt.Printf("   スコア: %.1f\n", rec.Score)
		fmt.Printf("   所要時間: 約%d時間 / 予算: %s\n", exp.DurationHours, exp.Budget)
		fmt.Printf("   ムード: %s / アクティビティ: %s\n", exp.Mood, exp.ActivityType)
		fmt.Printf("   概要: %s\n", exp.Description)
		fmt.Printf("   ベストシーズン: %s / おすすめ時間帯: %s\n", exp.IdealSeason, exp.IdealTime)
		booking := "当日参加OK"
		if exp.BookingRequired {
			booking = "要予約"
		}
		fmt.Printf("   予約: %s\n", booking)
		fmt.Println("   ハイライト:")
		for _, h := range exp.Highlights {
			fmt.Printf("    - %s\n", h)
		}
		if len(exp.Tips) > 0 {
			fmt.Println("   プランのコツ:")
			for _, tip := range exp.Tips {
				fmt.Printf("    - %s\n", tip)
			}
		}
		fmt.Println("   推薦ポイント:")
		for _, reason := range rec.Rationale {
			fmt.Printf("    * %s\n", reason)
		}
		fmt.Println()
	}
}

func runBudgets(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Builtin()
	if err != nil {
		return err
	}

	for _, band := range cat.Bands() {
		fmt.Printf("%s (%s)\n", band.Code, band.Label)
		fmt.Printf("   目安: %s\n", band.RangeLabel())
		fmt.Printf("   %s\n", band.Description)
		fmt.Println()
	}
	return nil
}
