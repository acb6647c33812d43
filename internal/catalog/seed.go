package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
)

//go:embed seed.yaml
var demoSeed []byte

type seedFile struct {
	Sims   []seedSim   `yaml:"sims"`
	Orders []seedOrder `yaml:"orders"`
}

type seedSim struct {
	ID          string   `yaml:"id"`
	PhoneNumber string   `yaml:"phone_number"`
	Price       int64    `yaml:"price"`
	Provider    string   `yaml:"provider"`
	Category    []string `yaml:"category"`
	Description string   `yaml:"description"`
	Score       *float64 `yaml:"score"`
	Status      string   `yaml:"status"`
}

type seedOrder struct {
	ID            string `yaml:"id"`
	SimID         string `yaml:"sim_id"`
	PhoneNumber   string `yaml:"phone_number"`
	Price         int64  `yaml:"price"`
	CustomerName  string `yaml:"customer_name"`
	CustomerPhone string `yaml:"customer_phone"`
	Address       string `yaml:"address"`
	Status        string `yaml:"status"`
	Age           string `yaml:"age"`
}

// Seed is a catalog plus demo orders ready to be written to the stores.
type Seed struct {
	Sims   []*model.Sim
	Orders []*model.Order
}

// DemoSeed decodes the embedded demo data. Order timestamps are placed relative
// to now.
func DemoSeed(now time.Time) (*Seed, error) {
	return ParseSeed(demoSeed, now)
}

// ParseSeed decodes and validates a YAML seed document.
func ParseSeed(data []byte, now time.Time) (*Seed, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	out := &Seed{}
	for i, s := range f.Sims {
		sim := &model.Sim{
			ID:          s.ID,
			PhoneNumber: s.PhoneNumber,
			Price:       s.Price,
			Provider:    model.Provider(s.Provider),
			Category:    s.Category,
			Description: s.Description,
			Score:       s.Score,
			Status:      model.SimStatus(s.Status),
		}
		if sim.ID == "" || sim.PhoneNumber == "" {
			return nil, fmt.Errorf("seed sim #%d: id and phone_number are required", i)
		}
		if !sim.Provider.Valid() {
			return nil, fmt.Errorf("seed sim %s: unknown provider %q", sim.ID, s.Provider)
		}
		if !sim.Status.Valid() {
			return nil, fmt.Errorf("seed sim %s: unknown status %q", sim.ID, s.Status)
		}
		if !sim.ScoreInRange() {
			return nil, fmt.Errorf("seed sim %s: score %v outside [0, 10]", sim.ID, *sim.Score)
		}
		out.Sims = append(out.Sims, sim)
	}

	for _, o := range f.Orders {
		status := model.OrderStatus(o.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("seed order %s: unknown status %q", o.ID, o.Status)
		}
		var age time.Duration
		if o.Age != "" {
			d, err := time.ParseDuration(o.Age)
			if err != nil {
				return nil, fmt.Errorf("seed order %s: age: %w", o.ID, err)
			}
			age = d
		}
		out.Orders = append(out.Orders, &model.Order{
			ID:            o.ID,
			SimID:         o.SimID,
			PhoneNumber:   o.PhoneNumber,
			Price:         o.Price,
			CustomerName:  o.CustomerName,
			CustomerPhone: o.CustomerPhone,
			Address:       o.Address,
			Status:        status,
			CreatedAt:     now.Add(-age).UnixMilli(),
		})
	}
	return out, nil
}
