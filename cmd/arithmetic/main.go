package main

import (
	"flag"
	"log"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/ropmatch/internal/arith"
	"github.com/ib-77/ropmatch/pkg/rop"
	"github.com/ib-77/ropmatch/pkg/rop/erased"
	"github.com/ib-77/ropmatch/pkg/rop/kind"
)

func getLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return config.Build()
}

func main() {
	op := flag.String("op", "+", "operator, one of + - * /")
	x := flag.Float64("x", 4, "left operand")
	y := flag.Float64("y", 3, "right operand")
	demo := flag.Bool("demo", false, "run the recovery chain and move demonstrations")
	flag.Parse()

	logger, err := getLogger()
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	r, size := utf8.DecodeRuneInString(*op)
	if size == 0 || size != len(*op) {
		logger.Fatal("operator must be a single character", zap.String("op", *op))
	}

	evaluate(logger, r, *x, *y)

	if *demo {
		recoveryChain(logger)
		moveResult(logger)
	}
}

func evaluate(logger *zap.Logger, op rune, x, y float64) {
	res := arith.Arithmetic(op, x, y)
	fields := []zap.Field{
		zap.String("op", string(op)),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Stringer("id", res.Id()),
	}

	rop.Match(res,
		rop.OnValue[erased.Error](func(v float64) struct{} {
			logger.Info("evaluated", append(fields, zap.Float64("result", v))...)
			return struct{}{}
		}),
		rop.OnKind[float64](func(kind.OutOfRange) struct{} {
			logger.Warn("the arguments out of range", fields...)
			return struct{}{}
		}),
		rop.OnKind[float64](func(kind.Range) struct{} {
			logger.Warn("the result out of range", fields...)
			return struct{}{}
		}),
		rop.OnErr[float64](func(e erased.Error) struct{} {
			logger.Error("evaluation failed", append(fields,
				zap.Error(e), zap.Stringer("category", e.Category()))...)
			return struct{}{}
		}),
	)
}

func recoveryChain(logger *zap.Logger) {
	v := arith.Arithmetic('^', 1, 0).
		OrElse(func(erased.Error) rop.Result[int, erased.Error] {
			logger.Info("op ^ failed, change to op /")
			return arith.Arithmetic('/', 1, 0)
		}).
		AndThen(func(v int) rop.Result[int, erased.Error] {
			logger.Info("op / succeed")
			return rop.Success[int, erased.Error](v)
		}).
		OrElse(func(erased.Error) rop.Result[int, erased.Error] {
			logger.Info("op / failed, change to op +")
			return arith.Arithmetic('+', 1, 0)
		}).
		AndThen(func(v int) rop.Result[int, erased.Error] {
			logger.Info("op + succeed, times the result by 10")
			return arith.Arithmetic('*', v, 10)
		}).
		OrElse(func(erased.Error) rop.Result[int, erased.Error] {
			logger.Info("eventually failed, set value as -1")
			return rop.Success[int, erased.Error](-1)
		}).
		Value()

	logger.Info("recovery chain finished", zap.Int("result", v))
}

func moveResult(logger *zap.Logger) {
	res := rop.Success[string, int](strings.Repeat("0", 100))
	logger.Info("before take", zap.Bool("empty", res.ValueOr("") == ""))

	s := res.TakeValueOr("")
	logger.Info("after take",
		zap.Bool("empty", res.ValueOr("") == ""),
		zap.Int("taken", len(s)),
		zap.Bool("still success", res.IsSuccess()))
}
