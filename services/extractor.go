package services

import (
	"regexp"
	"strings"
	"time"

	"marusalon-backend/config"
	"marusalon-backend/models"
	"marusalon-backend/utils"
)

// Extractor pulls structured booking parameters out of free text. The
// keyword implementation is intentionally coarse; a real NLU component
// can substitute without touching the booking lifecycle.
type Extractor interface {
	Extract(text string) models.PartialBookingRequest
}

var bookingIDPattern = regexp.MustCompile(`BK[A-Z0-9]+`)

// KeywordExtractor matches catalog names and a handful of fixed
// date/time words.
type KeywordExtractor struct {
	catalog *config.Catalog
	now     func() time.Time
}

func NewKeywordExtractor(catalog *config.Catalog) *KeywordExtractor {
	return &KeywordExtractor{catalog: catalog, now: time.Now}
}

func (e *KeywordExtractor) Extract(text string) models.PartialBookingRequest {
	lower := strings.ToLower(text)

	return models.PartialBookingRequest{
		ServiceID: e.extractService(lower),
		Date:      e.extractDate(lower),
		Time:      extractTime(lower),
		StylistID: e.extractStylist(lower),
		BookingID: bookingIDPattern.FindString(strings.ToUpper(text)),
		Reason:    extractReason(text),
	}
}

func (e *KeywordExtractor) extractService(lower string) string {
	for _, service := range e.catalog.Services {
		if strings.Contains(lower, strings.ToLower(service.Name)) ||
			strings.Contains(lower, service.ID) {
			return service.ID
		}
	}
	return ""
}

func (e *KeywordExtractor) extractStylist(lower string) string {
	for _, stylist := range e.catalog.Stylists {
		if strings.Contains(lower, strings.ToLower(stylist.Name)) ||
			strings.Contains(lower, stylist.ID) {
			return stylist.ID
		}
	}
	return ""
}

// extractDate understands only "today" and "tomorrow"; anything else
// defaults to tomorrow.
func (e *KeywordExtractor) extractDate(lower string) string {
	now := e.now()
	if strings.Contains(lower, "today") {
		return now.Format(utils.DateLayout)
	}
	return now.AddDate(0, 0, 1).Format(utils.DateLayout)
}

func extractTime(lower string) string {
	switch {
	case strings.Contains(lower, "morning"):
		return "09:00"
	case strings.Contains(lower, "afternoon"):
		return "14:00"
	case strings.Contains(lower, "evening"):
		return "17:00"
	}
	return "" // let the engine pick the first free slot
}

func extractReason(text string) string {
	if strings.Contains(strings.ToLower(text), "reason") {
		return text
	}
	return "Customer request"
}
