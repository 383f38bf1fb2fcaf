package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	rubikscube "github.com/h4rr9/rubiks-cube"
	"github.com/h4rr9/rubiks-cube/internal/render"
)

var (
	scrambleLen    int
	scrambleSeed   uint64
	scrambleMetric string
	plainOutput    bool
	fromFacelets   string
	reprFormat     string
	checkFile      string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Draw random turns uniformly from the generators of a metric and show the
resulting cube. The same seed always gives the same scramble.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

var applyCmd = &cobra.Command{
	Use:   "apply <turns>",
	Short: "Apply turns to a cube and show the result",
	Example: `  rubikscube apply "R U R' U'"
  rubikscube apply --from <54 letters> "F2 B2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var checkCmd = &cobra.Command{
	Use:   "check [facelets]",
	Short: "Decode a facelet string and check that it is reachable",
	Long: `Decode a cube from its 54 facelet letters (faces W, Y, G, B, R, O in that
order, each row by row, Yellow up and Green in front) or from a JSON
6x3x3 array of letters given with --file, and report whether the
state can be reached by face turns.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var reprCmd = &cobra.Command{
	Use:   "repr [turns]",
	Short: "Print the 480-bit one-hot representation of a state",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRepr,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLen, "turns", "n", 25, "Number of turns")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (default: time based)")
	scrambleCmd.Flags().StringVar(&scrambleMetric, "metric", "htm", "Turn metric: htm or qtm")
	scrambleCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print the net without colors")

	applyCmd.Flags().StringVar(&fromFacelets, "from", "", "Start from this facelet string instead of solved")
	applyCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print the net without colors")

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "JSON file with a 6x3x3 array of color letters (- for stdin)")

	reprCmd.Flags().StringVar(&reprFormat, "format", "indices", "Output format: indices or bits")
	reprCmd.Flags().StringVar(&fromFacelets, "from", "", "Start from this facelet string instead of solved")

	rootCmd.AddCommand(scrambleCmd, applyCmd, checkCmd, reprCmd)
}

func printCube(w io.Writer, c rubikscube.Cube) {
	if plainOutput {
		fmt.Fprint(w, c.String())
	} else {
		fmt.Fprintln(w, render.Framed(c))
	}
	fmt.Fprintf(w, "Solvable: %t  Solved: %t\n", c.IsSolvable(), c.IsSolved())
}

func runScramble(cmd *cobra.Command, args []string) error {
	metric, err := rubikscube.ParseMetric(scrambleMetric)
	if err != nil {
		return err
	}
	seed := scrambleSeed
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}
	log.WithField("seed", seed).Debug("scrambling")

	rng := rand.New(rand.NewPCG(seed, seed))
	c := rubikscube.New()
	turns := c.Scramble(scrambleLen, rng, rubikscube.WithMetric(metric))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, rubikscube.FormatTurns(turns))
	printCube(out, c)
	fmt.Fprintf(out, "Facelets: %s\n", c.Facelets())
	return nil
}

func startCube(facelets string) (rubikscube.Cube, error) {
	if facelets == "" {
		return rubikscube.New(), nil
	}
	return decodeChecked(func() (rubikscube.Cube, error) {
		return rubikscube.ParseFacelets(facelets)
	})
}

func runApply(cmd *cobra.Command, args []string) error {
	c, err := startCube(fromFacelets)
	if err != nil {
		return err
	}
	turns, err := rubikscube.ParseTurns(strings.Join(args, " "))
	if err != nil {
		return err
	}
	c.Apply(turns...)

	out := cmd.OutOrStdout()
	printCube(out, c)
	fmt.Fprintf(out, "Turns: %d (htm) %d (qtm)\n",
		rubikscube.HalfTurnMetric.Count(turns), rubikscube.QuarterTurnMetric.Count(turns))
	fmt.Fprintf(out, "Facelets: %s\n", c.Facelets())
	return nil
}

// decodeChecked turns a panic from a sticker combination that matches no
// cubie into an error. Such input cannot come from a real cube.
func decodeChecked(decode func() (rubikscube.Cube, error)) (c rubikscube.Cube, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("facelets describe no physical cube: %v", r)
		}
	}()
	return decode()
}

func readArray(path string) ([6][3][3]string, error) {
	var arr [6][3][3]string
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return arr, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &arr); err != nil {
		return arr, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return arr, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	var c rubikscube.Cube
	var err error
	switch {
	case checkFile != "":
		arr, rerr := readArray(checkFile)
		if rerr != nil {
			return rerr
		}
		c, err = decodeChecked(func() (rubikscube.Cube, error) { return rubikscube.FromArray(arr) })
	case len(args) == 1:
		c, err = decodeChecked(func() (rubikscube.Cube, error) { return rubikscube.ParseFacelets(args[0]) })
	default:
		return fmt.Errorf("pass a facelet string or --file")
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, c.String())
	fmt.Fprintf(out, "Edge parity:   %s\n", c.EdgeParity())
	fmt.Fprintf(out, "Corner parity: %s\n", c.CornerParity())
	if c.IsSolvable() {
		fmt.Fprintln(out, "Solvable: yes")
		return nil
	}
	fmt.Fprintln(out, "Solvable: no")
	return fmt.Errorf("cube is not reachable from solved")
}

func runRepr(cmd *cobra.Command, args []string) error {
	c, err := startCube(fromFacelets)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := c.ApplyNotation(args[0]); err != nil {
			return err
		}
	}

	b := c.Representation()
	out := cmd.OutOrStdout()
	switch reprFormat {
	case "indices":
		var idx []string
		for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
			idx = append(idx, fmt.Sprint(i))
		}
		fmt.Fprintln(out, strings.Join(idx, " "))
	case "bits":
		var sb strings.Builder
		for i := uint(0); i < rubikscube.RepresentationSize; i++ {
			if b.Test(i) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		fmt.Fprintln(out, sb.String())
	default:
		return fmt.Errorf("unknown format %q (want indices or bits)", reprFormat)
	}
	return nil
}
