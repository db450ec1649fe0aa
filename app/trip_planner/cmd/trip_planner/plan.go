package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/config"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/engine"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/storage"
)

type planFlags struct {
	from       string
	to         string
	start      string
	days       int
	tripType   string
	budget     string
	travellers int
	output     string
}

var pf planFlags

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a trip and print the result as JSON",
	Example: `  trip_planner plan --from Delhi --to Jaipur --start 2025-12-20 --days 3 \
    --type Cultural --budget Medium --travellers 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := pf.request()
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("无法加载配置文件: %w", err)
		}
		// stdout 只输出结果 JSON，日志写到 stderr
		if err := logger.InitLoggerWithOutput(cfg.Log.Level, cfg.Log.File, cmd.ErrOrStderr()); err != nil {
			return fmt.Errorf("无法初始化日志: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		eng, err := engine.NewEngine(ctx, cfg)
		if err != nil {
			return err
		}
		defer eng.Close()

		var out io.Writer = cmd.OutOrStdout()
		if pf.output != "" {
			f, err := os.Create(pf.output)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		res, err := planAndWrite(ctx, eng, req, out)
		if err != nil {
			return err
		}

		// 配置了数据库时保存结果
		if cfg.DB.Host != "" {
			store, err := storage.New(cfg.DB)
			if err != nil {
				logger.Log.Errorf("无法连接数据库: %v", err)
			} else {
				defer store.Close()
				if err := store.Save(ctx, res); err != nil {
					logger.Log.Errorf("保存行程失败: %v", err)
				} else {
					logger.Log.Infof("行程已保存: %s", res.ID)
				}
			}
		}
		return nil
	},
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&pf.from, "from", "", "source city (required)")
	f.StringVar(&pf.to, "to", "", "destination city (required)")
	f.StringVar(&pf.start, "start", "", "start date, YYYY-MM-DD (required)")
	f.IntVar(&pf.days, "days", 3, "number of days, 1-15")
	f.StringVar(&pf.tripType, "type", string(model.TripFun), "trip type: Family, Adventure, Romantic, Cultural, Relaxation, Fun")
	f.StringVar(&pf.budget, "budget", string(model.BudgetMedium), "budget: Low, Medium, High, Luxury")
	f.IntVar(&pf.travellers, "travellers", 1, "number of travellers, 1-15")
	f.StringVarP(&pf.output, "output", "o", "", "write JSON to file instead of stdout")
	_ = planCmd.MarkFlagRequired("from")
	_ = planCmd.MarkFlagRequired("to")
	_ = planCmd.MarkFlagRequired("start")
}

// request 将命令行参数转换为行程请求并校验
func (p planFlags) request() (model.TripRequest, error) {
	start, err := model.ParseDate(p.start)
	if err != nil {
		return model.TripRequest{}, err
	}
	req := model.TripRequest{
		Source:      p.from,
		Destination: p.to,
		StartDate:   start,
		Days:        p.days,
		TripType:    model.TripType(p.tripType),
		Budget:      model.Budget(p.budget),
		Travellers:  p.travellers,
	}
	return req, req.Validate()
}

type tripPlanner interface {
	Plan(ctx context.Context, req model.TripRequest, opts engine.RunOptions) (*model.TripResult, error)
}

// planAndWrite 执行规划并把结果 JSON 写入 out，进度写入日志
func planAndWrite(ctx context.Context, p tripPlanner, req model.TripRequest, out io.Writer) (*model.TripResult, error) {
	res, err := p.Plan(ctx, req, engine.RunOptions{
		ProgressCallback: func(state engine.State, progress int) {
			logger.Log.Infof("[%3d%%] %s", progress, state)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("trip planning failed: %w", err)
	}
	return res, writeJSON(out, res)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
