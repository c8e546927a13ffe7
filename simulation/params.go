package simulation

import (
	"errors"
	"fmt"
	"math"
)

// Topology は空間の境界の扱いを指定します。
type Topology string

const (
	// TopologyTorus は端でラップするトーラス空間。
	TopologyTorus Topology = "torus"
	// TopologyBox は四辺の壁で反射する有界空間。
	TopologyBox Topology = "box"
)

var ErrInvalidParams = errors.New("simulation: invalid params")

// Params はシミュレーションの設定値です。構築後は変更しません。
type Params struct {
	NumAgents      int     `yaml:"num_agents"`
	SizeX          float64 `yaml:"size_x"`
	SizeY          float64 `yaml:"size_y"`
	SpeedStdev     float64 `yaml:"speed_stdev"`
	InitInfected   int     `yaml:"init_infected"`
	InitVaccinated int     `yaml:"init_vaccinated"`

	// 感染確率テーブル: 受け手カテゴリ × 感染源カテゴリ の6通り
	InfectedToGeneral      float64 `yaml:"infected_to_general"`
	InfectedToHealed       float64 `yaml:"infected_to_healed"`
	InfectedToVaccinated   float64 `yaml:"infected_to_vaccinated"`
	VaccinatedToGeneral    float64 `yaml:"vaccinated_to_general"`
	VaccinatedToHealed     float64 `yaml:"vaccinated_to_healed"`
	VaccinatedToVaccinated float64 `yaml:"vaccinated_to_vaccinated"`

	InfectionAvgDuration float64 `yaml:"infection_avg_duration"`
	DeathRate            float64 `yaml:"death_rate"`

	Topology Topology `yaml:"topology"`
}

// DefaultParams は既定の設定を返します。
func DefaultParams() Params {
	return Params{
		NumAgents:              10000,
		SizeX:                  300,
		SizeY:                  300,
		SpeedStdev:             10,
		InitInfected:           1,
		InitVaccinated:         0,
		InfectedToGeneral:      0.1,
		InfectedToHealed:       0.02,
		InfectedToVaccinated:   0.001,
		VaccinatedToGeneral:    0.06,
		VaccinatedToHealed:     0.012,
		VaccinatedToVaccinated: 0.0006,
		InfectionAvgDuration:   30,
		DeathRate:              0.02,
		Topology:               TopologyTorus,
	}
}

// Validate は設定の不変条件を検査します。違反は致命的で、値の丸め込みは行いません。
func (p Params) Validate() error {
	if p.NumAgents < 0 {
		return fmt.Errorf("%w: num_agents = %d", ErrInvalidParams, p.NumAgents)
	}
	if p.SizeX <= 2*Radius || p.SizeY <= 2*Radius {
		return fmt.Errorf("%w: size %gx%g must exceed agent diameter %g", ErrInvalidParams, p.SizeX, p.SizeY, 2*Radius)
	}
	if p.SpeedStdev < 0 || !isFinite(p.SpeedStdev) {
		return fmt.Errorf("%w: speed_stdev = %g", ErrInvalidParams, p.SpeedStdev)
	}
	if p.InitInfected < 0 || p.InitInfected > p.NumAgents {
		return fmt.Errorf("%w: init_infected = %d with %d agents", ErrInvalidParams, p.InitInfected, p.NumAgents)
	}
	if p.InitVaccinated < 0 || p.InitVaccinated > p.NumAgents {
		return fmt.Errorf("%w: init_vaccinated = %d with %d agents", ErrInvalidParams, p.InitVaccinated, p.NumAgents)
	}
	for name, prob := range map[string]float64{
		"infected_to_general":      p.InfectedToGeneral,
		"infected_to_healed":       p.InfectedToHealed,
		"infected_to_vaccinated":   p.InfectedToVaccinated,
		"vaccinated_to_general":    p.VaccinatedToGeneral,
		"vaccinated_to_healed":     p.VaccinatedToHealed,
		"vaccinated_to_vaccinated": p.VaccinatedToVaccinated,
	} {
		if prob < 0 || prob > 1 || math.IsNaN(prob) {
			return fmt.Errorf("%w: %s = %g not in [0,1]", ErrInvalidParams, name, prob)
		}
	}
	if p.InfectionAvgDuration <= 0 || !isFinite(p.InfectionAvgDuration) {
		return fmt.Errorf("%w: infection_avg_duration = %g", ErrInvalidParams, p.InfectionAvgDuration)
	}
	if p.DeathRate <= 0 || !isFinite(p.DeathRate) {
		return fmt.Errorf("%w: death_rate = %g", ErrInvalidParams, p.DeathRate)
	}
	switch p.Topology {
	case TopologyTorus, TopologyBox:
	default:
		return fmt.Errorf("%w: topology = %q", ErrInvalidParams, p.Topology)
	}
	// 排除円の合計面積が配置可能領域の半分を超えると棄却サンプリングが収束しない
	usable := (p.SizeX - 2*Radius) * (p.SizeY - 2*Radius)
	exclusion := float64(p.NumAgents) * math.Pi * (2 * Radius) * (2 * Radius)
	if exclusion > usable/2 {
		return fmt.Errorf("%w: %d agents too dense for %gx%g space", ErrInvalidParams, p.NumAgents, p.SizeX, p.SizeY)
	}
	return nil
}

// transmissionProb は受け手カテゴリと感染源のワクチン接種有無から感染確率を引きます。
func (p Params) transmissionProb(recipient Category, sourceVaccinated bool) float64 {
	if sourceVaccinated {
		switch recipient {
		case CategoryVaccinated:
			return p.VaccinatedToVaccinated
		case CategoryHealed:
			return p.VaccinatedToHealed
		default:
			return p.VaccinatedToGeneral
		}
	}
	switch recipient {
	case CategoryVaccinated:
		return p.InfectedToVaccinated
	case CategoryHealed:
		return p.InfectedToHealed
	default:
		return p.InfectedToGeneral
	}
}
