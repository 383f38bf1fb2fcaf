package rubikscube

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/h4rr9/rubiks-cube/internal/perm"
)

func solvedTokens() [6][3][3]string {
	return SolvedFacelets().Tokens()
}

func TestFromArraySolvedRoundTrip(t *testing.T) {
	c, err := FromArray(solvedTokens())
	require.NoError(t, err)
	require.Equal(t, New(), c)
	require.True(t, c.IsSolved())
}

func TestFromArrayLowerCase(t *testing.T) {
	tokens := solvedTokens()
	tokens[2][0][0] = "g"
	c, err := FromArray(tokens)
	require.NoError(t, err)
	require.True(t, c.IsSolved())
}

// scrambleScenario is the state after
// B' R U2 R U R' L' U2 F B' D2 F2 D' L B2 D2 R2 L D' L D2 R L2 B' R'.
const scrambleScenario = "B' R U2 R U R' L' U2 F B' D2 F2 D' L B2 D2 R2 L D' L D2 R L2 B' R'"

var scenarioArray = [6][3][3]string{
	{{"O", "Y", "O"}, {"G", "W", "B"}, {"O", "G", "B"}},
	{{"B", "W", "R"}, {"B", "Y", "Y"}, {"R", "O", "G"}},
	{{"G", "Y", "Y"}, {"B", "G", "R"}, {"Y", "R", "B"}},
	{{"B", "O", "W"}, {"G", "B", "R"}, {"Y", "O", "W"}},
	{{"R", "W", "W"}, {"G", "R", "R"}, {"G", "Y", "G"}},
	{{"R", "B", "Y"}, {"W", "O", "W"}, {"W", "O", "O"}},
}

func TestFromArrayReachableScenario(t *testing.T) {
	decoded, err := FromArray(scenarioArray)
	require.NoError(t, err)

	replayed := New()
	require.NoError(t, replayed.ApplyNotation(scrambleScenario))

	require.Equal(t, replayed, decoded)
	require.True(t, decoded.IsSolvable())
	require.Equal(t, scenarioArray, replayed.Facelets().Tokens())

	require.Equal(t, []uint8{4, 0, 3, 7, 6, 1, 5, 2}, decoded.corners.Mapping())
	require.Equal(t, []uint8{9, 0, 1, 8, 7, 10, 11, 4, 6, 5, 3, 2}, decoded.edges.Mapping())
	require.Equal(t, []uint8{2, 2, 2, 2, 2, 2, 1, 2}, decoded.cornerTwists.Values())
	require.Equal(t, []uint8{0, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 0}, decoded.edgeFlips.Values())
}

func TestFromArraySwappedFaces(t *testing.T) {
	tokens := solvedTokens()
	tokens[2], tokens[3] = tokens[3], tokens[2]

	_, err := FromArray(tokens)
	require.ErrorIs(t, err, ErrInvalidFaceOrder)

	var orderErr *FaceOrderError
	require.True(t, errors.As(err, &orderErr))
	require.Equal(t, Blue, orderErr.Color)
	require.Equal(t, 2, orderErr.Index)
}

func TestFromArrayBadToken(t *testing.T) {
	tokens := solvedTokens()
	tokens[4][2][1] = "P"

	_, err := FromArray(tokens)
	require.ErrorIs(t, err, ErrInvalidFaceletColor)

	var colorErr *FaceletColorError
	require.True(t, errors.As(err, &colorErr))
	require.Equal(t, "P", colorErr.Token)
}

func TestFromArrayStopsAtFirstError(t *testing.T) {
	tokens := solvedTokens()
	tokens[0][1][1] = "Y" // center of face 0
	tokens[1][0][0] = "X"

	_, err := FromArray(tokens)
	require.ErrorIs(t, err, ErrInvalidFaceOrder)
}

func TestFromArrayUnreachableDecodes(t *testing.T) {
	tokens := solvedTokens()
	// Flip the Yellow/Blue edge in place.
	tokens[1][0][1], tokens[3][0][1] = "B", "Y"

	c, err := FromArray(tokens)
	require.NoError(t, err)
	require.False(t, c.IsSolvable())
	cubie, flip := c.EdgeAt(0)
	require.Equal(t, 0, cubie)
	require.Equal(t, 1, flip)
}

func TestFromArrayTwistedCorner(t *testing.T) {
	c := New()
	c.cornerTwists.AddOne(5)

	decoded, err := FromArray(c.Facelets().Tokens())
	require.NoError(t, err)
	require.Equal(t, c, decoded)
	require.False(t, decoded.IsSolvable())
}

func TestFromArraySwappedCornersDecodes(t *testing.T) {
	c := New()
	c.corners = perm.NewWithMapping([]uint8{1, 0, 2, 3, 4, 5, 6, 7})

	decoded, err := FromArray(c.Facelets().Tokens())
	require.NoError(t, err)
	require.Equal(t, c, decoded)
	require.False(t, decoded.IsSolvable())
}

func TestFromArrayImpossibleStickersPanic(t *testing.T) {
	tokens := solvedTokens()
	// No edge carries two Yellow stickers.
	tokens[3][0][1] = "Y"
	require.Panics(t, func() { _, _ = FromArray(tokens) })
}

func TestFromFacelets(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 100))
	for i := 0; i < 50; i++ {
		c := Scramble(40, rng)
		decoded, err := FromFacelets(c.Facelets())
		require.NoError(t, err)
		require.Equal(t, c, decoded)
	}

	f := SolvedFacelets()
	f[3][1][1] = Green
	_, err := FromFacelets(f)
	require.ErrorIs(t, err, ErrInvalidFaceOrder)

	f = SolvedFacelets()
	f[0][0][0] = Color(9)
	_, err = FromFacelets(f)
	require.ErrorIs(t, err, ErrInvalidFaceletColor)
}

func TestFaceletsCentersFixed(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	f := Scramble(30, rng).Facelets()
	for face := range f {
		require.Equal(t, Color(face), f[face][1][1])
	}

	// every color appears nine times
	var counts [6]int
	for face := range f {
		for row := range f[face] {
			for _, c := range f[face][row] {
				counts[c]++
			}
		}
	}
	require.Equal(t, [6]int{9, 9, 9, 9, 9, 9}, counts)
}

func TestParseFacelets(t *testing.T) {
	c := New()
	c.Apply(TPerm...)
	s := c.Facelets().String()
	require.Len(t, s, 54)

	decoded, err := ParseFacelets(s)
	require.NoError(t, err)
	require.Equal(t, c, decoded)

	spaced := s[:9] + "\n" + s[9:27] + " " + s[27:]
	decoded, err = ParseFacelets(spaced)
	require.NoError(t, err)
	require.Equal(t, c, decoded)

	// Any Unicode space separates, including vertical tabs and NBSP.
	decoded, err = ParseFacelets(s[:18] + "\v" + s[18:36] + "\u00a0" + s[36:])
	require.NoError(t, err)
	require.Equal(t, c, decoded)

	_, err = ParseFacelets(s[:53])
	require.ErrorIs(t, err, ErrInvalidFaceletCount)
	_, err = ParseFacelets(s + "W")
	require.ErrorIs(t, err, ErrInvalidFaceletCount)
}
