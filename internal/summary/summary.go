// Package summary turns a finished order into the itemized summary and the
// text handed to the messaging deep link.
package summary

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/whiteboardproductions/site/go/internal/models"
)

const (
	greeting     = "Hi, I would like to order:"
	confirmation = "Please confirm the details and let me know the next steps."

	whatsAppBaseURL = "https://wa.me/"
)

type Line struct {
	Title  string
	Detail string
	Amount int64
	// AddOn lines render with a leading plus sign.
	AddOn bool
}

type Summary struct {
	Currency models.Currency
	Lines    []Line
	Total    int64
}

func Build(o *models.OrderState, c models.Currency) Summary {
	s := Summary{Currency: c}

	s.Lines = append(s.Lines, Line{
		Title:  o.Tier.Name + " Plan",
		Detail: "Podcasting & Video Editing Package",
		Amount: o.Tier.Price.In(c),
	})
	if o.PodcastAddOn != nil {
		s.Lines = append(s.Lines, Line{
			Title:  "Podcast Production - " + o.PodcastAddOn.Name,
			Detail: o.PodcastAddOn.Description,
			Amount: o.PodcastAddOn.Price.In(c),
			AddOn:  true,
		})
	}
	if o.VideoPackage != nil {
		s.Lines = append(s.Lines, Line{
			Title:  o.VideoPackage.Name,
			Detail: fmt.Sprintf("%d video variations", o.VideoPackage.VariationCount),
			Amount: o.VideoPackage.Price.In(c),
			AddOn:  true,
		})
	}

	s.Total = o.Total(c)
	return s
}

func (l Line) FormattedAmount(c models.Currency) string {
	if l.AddOn {
		return "+" + FormatPrice(l.Amount, c)
	}
	return FormatPrice(l.Amount, c)
}

// Message serializes the order for the studio. The output depends only on
// its arguments.
func Message(o *models.OrderState, c models.Currency) string {
	var b strings.Builder

	b.WriteString(greeting + "\n\n")
	fmt.Fprintf(&b, "📦 Package: %s - %s\n", o.Tier.Name, FormatPrice(o.Tier.Price.In(c), c))

	if o.PodcastAddOn != nil {
		fmt.Fprintf(&b, "🎙️ Podcast Production: %s - %s\n",
			o.PodcastAddOn.Name, FormatPrice(o.PodcastAddOn.Price.In(c), c))
	}
	if o.VideoPackage != nil {
		fmt.Fprintf(&b, "🎬 Video Variations: %s (%d variations) - %s\n",
			o.VideoPackage.Name, o.VideoPackage.VariationCount, FormatPrice(o.VideoPackage.Price.In(c), c))
	}

	fmt.Fprintf(&b, "\n💰 Total: %s\n\n", FormatPrice(o.Total(c), c))
	b.WriteString(confirmation)

	return b.String()
}

// DeliveryBase picks the deep link target: the studio number from the
// content override when one is set, the configured link otherwise.
func DeliveryBase(configured, whatsAppNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, whatsAppNumber)
	if digits == "" {
		return configured
	}
	return whatsAppBaseURL + digits
}

// DeepLink attaches the URL-encoded message to the delivery base link.
func DeepLink(base, msg string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + url.Values{"text": {msg}}.Encode()
}
