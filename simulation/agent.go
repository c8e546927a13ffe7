package simulation

// Radius は全エージェント共通の半径（空間単位）です。
const Radius = 0.5

// Category は感受性を決める健康カテゴリです。
// ワクチン接種は回復歴より優先されます。
type Category uint8

const (
	CategoryGeneral Category = iota
	CategoryHealed
	CategoryVaccinated
)

// Status はエージェントの健康状態です。
type Status struct {
	// Infected が true のとき InfectedSince に感染開始時刻（シミュレーション時間）を持つ
	Infected      bool
	InfectedSince float64
	// PastInfected は一度でも回復したら true のまま維持される
	PastInfected bool
	Vaccinated   bool
}

// Category は感受性カテゴリを導出します。
func (s Status) Category() Category {
	switch {
	case s.Vaccinated:
		return CategoryVaccinated
	case s.PastInfected:
		return CategoryHealed
	default:
		return CategoryGeneral
	}
}

// Agent はフィールド上の1個体です。
type Agent struct {
	Pos    Vec2
	Vel    Vec2
	Status Status
}

func (a *Agent) infect(t float64) {
	a.Status.Infected = true
	a.Status.InfectedSince = t
}

func (a *Agent) vaccinate() {
	a.Status.Vaccinated = true
}
