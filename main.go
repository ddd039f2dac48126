package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/takakv/ecc-core/curve"
	"github.com/takakv/ecc-core/field"
	"github.com/takakv/ecc-core/secp256k1"
)

const envPrefix = "ECC"

type app struct {
	v      *viper.Viper
	logger *zap.Logger
	out    io.Writer
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// parseInt accepts decimal or 0x-prefixed hexadecimal integers.
func parseInt(name, s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.Errorf("invalid integer %q for --%s", s, name)
	}
	return n, nil
}

func curveFlags(fs *pflag.FlagSet) {
	fs.String("prime", "223", "field prime")
	fs.String("a", "0", "curve coefficient a")
	fs.String("b", "7", "curve coefficient b")
	fs.String("x", "47", "x coordinate of the point")
	fs.String("y", "71", "y coordinate of the point")
}

func (a *app) integer(name string) (*big.Int, error) {
	return parseInt(name, a.v.GetString(name))
}

func (a *app) element(name string, prime *big.Int) (field.Element, error) {
	n, err := a.integer(name)
	if err != nil {
		return field.Element{}, err
	}
	e, err := field.New(n, prime)
	return e, errors.WithMessagef(err, "--%s", name)
}

// point reads the curve and point flags.
func (a *app) point() (curve.Point, error) {
	prime, err := a.integer("prime")
	if err != nil {
		return curve.Point{}, err
	}
	var els [4]field.Element
	for i, name := range []string{"a", "b", "x", "y"} {
		if els[i], err = a.element(name, prime); err != nil {
			return curve.Point{}, err
		}
	}
	c, err := curve.New(els[0], els[1])
	if err != nil {
		return curve.Point{}, err
	}
	a.logger.Debug("curve", zap.Stringer("curve", c))
	return c.Point(els[2], els[3])
}

func (a *app) bind(cmd *cobra.Command) error {
	return a.v.BindPFlags(cmd.Flags())
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a point is on a curve",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bind(cmd); err != nil {
				return err
			}
			p, err := a.point()
			if errors.Is(err, curve.ErrPointNotOnCurve) {
				fmt.Fprintln(a.out, "not on curve")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "on curve:", p)
			return nil
		},
	}
	curveFlags(cmd.Flags())
	return cmd
}

func (a *app) mulCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply a point by a scalar",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bind(cmd); err != nil {
				return err
			}
			p, err := a.point()
			if err != nil {
				return err
			}
			k, err := a.integer("k")
			if err != nil {
				return err
			}

			mul, algorithm := p.ScalarMul, "binary"
			if a.v.GetBool("naive") {
				mul, algorithm = p.NaiveMul, "naive"
			}
			start := time.Now()
			r, err := mul(k)
			if err != nil {
				return err
			}
			a.logger.Debug("scalar multiplication",
				zap.String("algorithm", algorithm),
				zap.Stringer("k", k),
				zap.Duration("elapsed", time.Since(start)))
			fmt.Fprintln(a.out, r)
			return nil
		},
	}
	curveFlags(cmd.Flags())
	cmd.Flags().String("k", "1", "scalar")
	cmd.Flags().Bool("naive", false, "use repeated addition instead of double-and-add")
	return cmd
}

func (a *app) orderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Find the order of a point by repeated addition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bind(cmd); err != nil {
				return err
			}
			p, err := a.point()
			if err != nil {
				return err
			}
			n, err := p.Order(a.v.GetUint64("limit"))
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, n)
			return nil
		},
	}
	curveFlags(cmd.Flags())
	cmd.Flags().Uint64("limit", 1<<20, "give up after this many additions")
	return cmd
}

func (a *app) secp256k1Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secp256k1",
		Short: "Multiply the secp256k1 generator by a scalar",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bind(cmd); err != nil {
				return err
			}
			k, err := a.integer("k")
			if err != nil {
				return err
			}
			a.logger.Debug("secp256k1", zap.Stringer("order", secp256k1.Order()))
			fmt.Fprintln(a.out, secp256k1.G().Mul(k))
			return nil
		},
	}
	cmd.Flags().String("k", "1", "scalar")
	return cmd
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop(), out: out}
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "ecc",
		Short:         "Prime field and elliptic curve arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			logger, err := newLogger(a.v.GetBool("verbose"))
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.AddCommand(a.checkCmd(), a.mulCmd(), a.orderCmd(), a.secp256k1Cmd())
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
