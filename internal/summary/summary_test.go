package summary

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/models"
)

func proFullOrder(t *testing.T) *models.OrderState {
	t.Helper()
	cat := catalog.Default()
	tier, err := cat.Tier("pro")
	require.NoError(t, err)
	addOn, _ := cat.PodcastOption(models.PodcastStandard)
	pack, _ := cat.VideoPackage(models.VideoPackStandard)

	return &models.OrderState{
		Tier:                 tier,
		HasPodcastContent:    models.Bool(false),
		PodcastAddOn:         &addOn,
		WantsVideoVariations: models.Bool(true),
		VideoPackage:         &pack,
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$794", FormatPrice(794, models.CurrencyUSD))
	assert.Equal(t, "$2,049", FormatPrice(2049, models.CurrencyUSD))
	assert.Equal(t, "$0", FormatPrice(0, models.CurrencyUSD))
	assert.Equal(t, "₹25,000", FormatPrice(25000, models.CurrencyINR))
	assert.Equal(t, "₹3,000", FormatPrice(3000, models.CurrencyINR))
	assert.True(t, strings.HasPrefix(FormatPrice(170500, models.CurrencyINR), "₹"))
}

func TestMessageProFullOrder(t *testing.T) {
	msg := Message(proFullOrder(t), models.CurrencyUSD)

	want := "Hi, I would like to order:\n\n" +
		"📦 Package: Pro - $699\n" +
		"🎙️ Podcast Production: Standard - $60\n" +
		"🎬 Video Variations: Standard Pack (5 variations) - $35\n" +
		"\n💰 Total: $794\n\n" +
		"Please confirm the details and let me know the next steps."
	assert.Equal(t, want, msg)
}

func TestMessageOmitsAbsentAddOns(t *testing.T) {
	tier, err := catalog.Default().Tier("startup")
	require.NoError(t, err)
	o := &models.OrderState{Tier: tier, WantsVideoVariations: models.Bool(false)}

	msg := Message(o, models.CurrencyUSD)
	assert.Contains(t, msg, "📦 Package: Startup - $299\n")
	assert.Contains(t, msg, "💰 Total: $299")
	assert.NotContains(t, msg, "Podcast Production")
	assert.NotContains(t, msg, "Video Variations")
	assert.True(t, strings.HasSuffix(msg, "let me know the next steps."))
}

func TestMessageIsPure(t *testing.T) {
	o := proFullOrder(t)
	assert.Equal(t, Message(o, models.CurrencyINR), Message(o, models.CurrencyINR))
	assert.NotEqual(t, Message(o, models.CurrencyINR), Message(o, models.CurrencyUSD))
}

func TestMessageUsesOneCurrency(t *testing.T) {
	msg := Message(proFullOrder(t), models.CurrencyINR)
	assert.NotContains(t, msg, "$")
	assert.Contains(t, msg, "Standard - ₹5,000")
	assert.Contains(t, msg, "Standard Pack (5 variations) - ₹3,000")
	assert.Contains(t, msg, "Total: ₹")
}

func TestBuild(t *testing.T) {
	s := Build(proFullOrder(t), models.CurrencyUSD)

	require.Len(t, s.Lines, 3)
	assert.Equal(t, "Pro Plan", s.Lines[0].Title)
	assert.Equal(t, "$699", s.Lines[0].FormattedAmount(s.Currency))
	assert.Equal(t, "Podcast Production - Standard", s.Lines[1].Title)
	assert.Equal(t, "Professional mastering & editing", s.Lines[1].Detail)
	assert.Equal(t, "+$60", s.Lines[1].FormattedAmount(s.Currency))
	assert.Equal(t, "5 video variations", s.Lines[2].Detail)
	assert.Equal(t, int64(794), s.Total)

	var sum int64
	for _, l := range s.Lines {
		sum += l.Amount
	}
	assert.Equal(t, s.Total, sum)
}

func TestDeepLinkRoundTrips(t *testing.T) {
	msg := Message(proFullOrder(t), models.CurrencyUSD)
	link := DeepLink("https://wa.me/message/DUFCKWYTKH7KC1", msg)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/message/DUFCKWYTKH7KC1", u.Path)
	assert.Equal(t, msg, u.Query().Get("text"))
	assert.NotContains(t, link, "\n")
	assert.NotContains(t, link, " ")

	withQuery := DeepLink("https://example.com/send?phone=1", "hi & bye")
	u, err = url.Parse(withQuery)
	require.NoError(t, err)
	assert.Equal(t, "1", u.Query().Get("phone"))
	assert.Equal(t, "hi & bye", u.Query().Get("text"))
}

func TestDeliveryBase(t *testing.T) {
	assert.Equal(t, "https://wa.me/918384092211", DeliveryBase("https://wa.me/message/X", "+91 83840-92211"))
	assert.Equal(t, "https://wa.me/message/X", DeliveryBase("https://wa.me/message/X", ""))
	assert.Equal(t, "https://wa.me/message/X", DeliveryBase("https://wa.me/message/X", "n/a"))
}
