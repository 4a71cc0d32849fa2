package config

import (
	"encoding/json"
	"fmt"
	"os"

	"marusalon-backend/models"
)

// Catalog is the salon's reference data: services, stylists and business
// hours. Loaded once at startup and treated as immutable afterwards.
type Catalog struct {
	Services      []models.Service     `json:"services"`
	Stylists      []models.Stylist     `json:"stylists"`
	BusinessHours models.BusinessHours `json:"businessHours"`
}

// LoadCatalog reads the catalog from the CATALOG_FILE JSON file if set,
// otherwise returns the built-in defaults.
func LoadCatalog() (*Catalog, error) {
	path := os.Getenv("CATALOG_FILE")
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return &catalog, nil
}

// DefaultCatalog returns the salon's standard service menu and roster.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Services: []models.Service{
			{ID: "haircut", Name: "Haircut & Styling", Duration: 60, Price: 250},
			{ID: "coloring", Name: "Hair Coloring", Duration: 120, Price: 450},
			{ID: "highlights", Name: "Highlights", Duration: 180, Price: 600},
			{ID: "balayage", Name: "Balayage", Duration: 240, Price: 800},
			{ID: "treatment", Name: "Hair Treatment", Duration: 90, Price: 300},
			{ID: "bridal", Name: "Bridal Hair", Duration: 180, Price: 1200},
			{ID: "mens", Name: "Men's Grooming", Duration: 45, Price: 180},
		},
		Stylists: []models.Stylist{
			{ID: "sarah", Name: "Sarah Johnson", Specialties: []string{"haircut", "coloring", "highlights"}},
			{ID: "mike", Name: "Mike Chen", Specialties: []string{"haircut", "mens", "treatment"}},
			{ID: "lisa", Name: "Lisa Williams", Specialties: []string{"balayage", "bridal", "coloring"}},
			{ID: "david", Name: "David Brown", Specialties: []string{"haircut", "mens", "treatment"}},
		},
		BusinessHours: models.BusinessHours{
			"monday":    {Open: 9 * 60, Close: 18 * 60},
			"tuesday":   {Open: 9 * 60, Close: 18 * 60},
			"wednesday": {Open: 9 * 60, Close: 18 * 60},
			"thursday":  {Open: 9 * 60, Close: 18 * 60},
			"friday":    {Open: 9 * 60, Close: 18 * 60},
			"saturday":  {Open: 9 * 60, Close: 16 * 60},
			"sunday":    {Closed: true},
		},
	}
}

// ServiceByID looks up a service; nil if unknown.
func (c *Catalog) ServiceByID(id string) *models.Service {
	for i := range c.Services {
		if c.Services[i].ID == id {
			return &c.Services[i]
		}
	}
	return nil
}

// StylistByID looks up a stylist; nil if unknown.
func (c *Catalog) StylistByID(id string) *models.Stylist {
	for i := range c.Stylists {
		if c.Stylists[i].ID == id {
			return &c.Stylists[i]
		}
	}
	return nil
}

// StylistName resolves a stylist id for display. An empty id means any
// available stylist.
func (c *Catalog) StylistName(id string) string {
	if id == "" {
		return "Any Available"
	}
	if s := c.StylistByID(id); s != nil {
		return s.Name
	}
	return "Unknown Stylist"
}

// HoursFor returns the opening hours for a weekday key ("monday"...).
// Missing entries count as closed.
func (c *Catalog) HoursFor(weekday string) models.DayHours {
	if hours, ok := c.BusinessHours[weekday]; ok {
		return hours
	}
	return models.DayHours{Closed: true}
}
