package catcher

// Snapshot is the read-only view handed to renderers each frame.
// It owns its slices; holding on to it never aliases simulation state.
type Snapshot struct {
	Frame uint64 `json:"frame"`

	FieldW float64 `json:"field_w"`
	FieldH float64 `json:"field_h"`

	Catcher CatcherView `json:"catcher"`
	Objects []ObjectView `json:"objects"`
	Texts   []TextView   `json:"texts"`

	Score        int     `json:"score"`
	Lives        int     `json:"lives"`
	ComboActive  bool    `json:"combo_active"`
	ComboCounter int     `json:"combo_counter"`
	Difficulty   float64 `json:"difficulty"`
	Paused       bool    `json:"paused"`
	GameOver     bool    `json:"game_over"`

	ShakeX float64 `json:"shake_x"`
	ShakeY float64 `json:"shake_y"`
}

// CatcherView is the catcher body and its basket hitbox.
type CatcherView struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
	BasketX float64 `json:"basket_x"`
	BasketY float64 `json:"basket_y"`
	BasketW float64 `json:"basket_w"`
	BasketH float64 `json:"basket_h"`
}

// ObjectView is one falling object.
type ObjectView struct {
	ID   uint64  `json:"id"`
	Kind Kind    `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// TextView is one floating label.
type TextView struct {
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Opacity float64 `json:"opacity"`
}

// Snapshot captures the state for rendering.
func (s *Sim) Snapshot(st State, frame uint64) Snapshot {
	body, basket := st.Catcher.Body(), st.Catcher.Basket()
	snap := Snapshot{
		Frame:  frame,
		FieldW: s.cfg.Field.Width,
		FieldH: s.cfg.Field.Height,
		Catcher: CatcherView{
			X: body.X, Y: body.Y, W: body.W, H: body.H,
			BasketX: basket.X, BasketY: basket.Y, BasketW: basket.W, BasketH: basket.H,
		},
		Objects:      make([]ObjectView, 0, len(st.Objects)),
		Texts:        make([]TextView, 0, len(st.Texts)),
		Score:        st.Score,
		Lives:        st.Lives,
		ComboActive:  st.Combo.Active,
		ComboCounter: st.Combo.Counter,
		Difficulty:   st.Difficulty,
		Paused:       st.Paused,
		GameOver:     st.Over,
		ShakeX:       st.Shake.DX,
		ShakeY:       st.Shake.DY,
	}
	for _, o := range st.Objects {
		snap.Objects = append(snap.Objects, ObjectView{ID: o.ID, Kind: o.Kind, X: o.X, Y: o.Y, W: o.W, H: o.H})
	}
	for _, t := range st.Texts {
		snap.Texts = append(snap.Texts, TextView{Text: t.Text, X: t.X, Y: t.Y, Opacity: t.Opacity})
	}
	return snap
}
