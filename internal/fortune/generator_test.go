package fortune

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	text    string
	err     error
	calls   int
	prompts []string
	block   bool
}

func (f *fakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func TestOfflineFortune(t *testing.T) {
	g := NewGenerator(nil)
	require.True(t, g.Offline())

	tests := []struct {
		fill   float64
		rating int
	}{
		{0.4, 0},
		{9.99, 0},
		{88.2, 8},
		{100, 10},
		{125, 12},
	}

	for _, tc := range tests {
		res := g.Generate(context.Background(), PourStats{FillPercentage: tc.fill, TimeTaken: 3})
		assert.Equal(t, SourceOffline, res.Source)
		assert.Equal(t, CoffeeFortune{
			Rating:         tc.rating,
			Title:          "The Mystery Pour",
			Fortune:        "The mists of the future are clouded... (Check API Key)",
			BaristaComment: "I can't quite read this cup.",
		}, res.Fortune, "fill %.2f", tc.fill)
	}
}

func TestRemoteFortune(t *testing.T) {
	client := &fakeClient{text: `{"rating": 8.6, "title": "The Golden Ring", "fortune": "Luck pools where patience pours.", "baristaComment": "Steady wrist."}`}
	g := NewGenerator(client)

	res := g.Generate(context.Background(), PourStats{FillPercentage: 88, TimeTaken: 4.2})

	assert.Equal(t, SourceRemote, res.Source)
	assert.Equal(t, 9, res.Fortune.Rating)
	assert.Equal(t, "The Golden Ring", res.Fortune.Title)
	assert.Equal(t, 1, client.calls)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Fill Percentage: 88.0%")
}

func TestRemoteErrorDegradesWithoutRetry(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	g := NewGenerator(client)

	res := g.Generate(context.Background(), PourStats{FillPercentage: 50, TimeTaken: 2})

	assert.Equal(t, SourceDegraded, res.Source)
	assert.Equal(t, CoffeeFortune{
		Rating:         5,
		Title:          "The Silent Cup",
		Fortune:        "The spirits are quiet today. Try pouring again.",
		BaristaComment: "Unable to connect to the ether (API Error).",
	}, res.Fortune)
	assert.Equal(t, 1, client.calls)
}

func TestMalformedResponseDegrades(t *testing.T) {
	responses := []string{
		"",
		"not json",
		`{"rating": 7, "title": "x", "fortune": "y"}`,
		`{"rating": 11, "title": "x", "fortune": "y", "baristaComment": "z"}`,
		`{"rating": "7", "title": "x", "fortune": "y", "baristaComment": "z"}`,
	}

	for _, text := range responses {
		g := NewGenerator(&fakeClient{text: text})
		res := g.Generate(context.Background(), PourStats{FillPercentage: 90})
		assert.Equal(t, SourceDegraded, res.Source, "response %q", text)
		assert.Equal(t, Degraded(), res.Fortune, "response %q", text)
	}
}

func TestTimeoutDegrades(t *testing.T) {
	client := &fakeClient{block: true}
	g := NewGenerator(client, WithTimeout(10*time.Millisecond))

	res := g.Generate(context.Background(), PourStats{FillPercentage: 90})

	assert.Equal(t, SourceDegraded, res.Source)
	assert.Equal(t, 1, client.calls)
}
