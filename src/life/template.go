package life

import (
	"encoding/json"
	"math/rand"
	"os"

	"github.com/pkg/errors"
)

//Template represents a seeding template which can be used to settle the
//engine with a predefined pattern
type Template struct {
	Name        string  `json:"name"`        //template name
	Descr       string  `json:"descr"`       //template descr
	Coordinates [][]int `json:"coordinates"` //array of [x,y] coordinates
}

//Cells converts the template coordinate pairs to cell coordinates
//malformed pairs (fewer than two components) are skipped
func (t Template) Cells() []Coordinate {
	cells := make([]Coordinate, 0, len(t.Coordinates))
	for _, v := range t.Coordinates {
		if len(v) < 2 {
			continue
		}
		cells = append(cells, Coordinate{X: v[0], Y: v[1]})
	}
	return cells
}

//BuiltinTemplates returns the patterns shipped with the simulator
func BuiltinTemplates() map[string]Template {
	return map[string]Template{
		"blinker": {
			Name:        "blinker",
			Descr:       "period 2 oscillator, flips between a horizontal and a vertical line",
			Coordinates: [][]int{{-1, 0}, {0, 0}, {1, 0}},
		},
		"block": {
			Name:        "block",
			Descr:       "2x2 still life, never changes",
			Coordinates: [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		},
		"glider": {
			Name:        "glider",
			Descr:       "the classic diagonal spaceship",
			Coordinates: [][]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}},
		},
		"testSample": {
			Name:        "testSample",
			Descr:       "the test sample with 3 stable patterns",
			Coordinates: [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
		},
	}
}

//LoadTemplates reads additional templates from a JSON file holding an
//array of Template objects
func LoadTemplates(filename string) (map[string]Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadTemplates] failed to read file: %+v", filename)
	}

	var tmpls []Template
	if err = json.Unmarshal(data, &tmpls); err != nil {
		return nil, errors.Wrapf(err, "[LoadTemplates] failed to unmarshal data from file: %+v", filename)
	}

	out := make(map[string]Template, len(tmpls))
	for _, t := range tmpls {
		if t.Name == "" {
			return nil, errors.Errorf("[LoadTemplates] template without a name in file: %+v", filename)
		}
		out[t.Name] = t
	}
	return out, nil
}

//RandomSoup returns count random cells inside the rectangle
//[0,width) x [0,height), duplicates allowed (they collapse on seeding)
func RandomSoup(width, height, count int) []Coordinate {
	cells := make([]Coordinate, 0, count)
	for i := 0; i < count; i++ {
		cells = append(cells, Coordinate{X: rand.Intn(width), Y: rand.Intn(height)})
	}
	return cells
}
