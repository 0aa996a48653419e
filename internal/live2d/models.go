package live2d

// ModelHost serves the stock models.
const ModelHost = "https://model.hacxy.cn/"

func volume(v float64) *float64 { return &v }

// DefaultModels returns the stock model set used when none are configured.
// A fresh slice is returned on every call.
func DefaultModels() []Model {
	return []Model{
		{
			Path:       ModelHost + "HK416-1-normal/model.json",
			Position:   []float64{0, 60},
			Scale:      0.06,
			StageStyle: &StageStyle{Height: 340},
		},
		{
			Path:       ModelHost + "cat-black/model.json",
			Scale:      0.15,
			Position:   []float64{0, 20},
			StageStyle: &StageStyle{Height: 350},
		},
		{
			Path:       ModelHost + "shizuku_pajama/index.json",
			Scale:      0.2,
			Volume:     volume(0),
			Position:   []float64{40, 10},
			StageStyle: &StageStyle{Height: 350, Width: 330},
		},
		{
			Path:       ModelHost + "shizuku/shizuku.model.json",
			Scale:      0.2,
			Volume:     volume(0),
			Position:   []float64{70, 70},
			StageStyle: &StageStyle{Height: 370, Width: 400},
		},
		{
			Path:     ModelHost + "Senko_Normals/senko.model3.json",
			Position: []float64{-10, 20},
		},
		{
			Path:       ModelHost + "Pio/model.json",
			Scale:      0.4,
			Position:   []float64{0, 50},
			StageStyle: &StageStyle{Height: 300},
		},
	}
}
