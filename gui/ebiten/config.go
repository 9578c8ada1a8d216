//go:build !wasm
// +build !wasm

package ebiten

import (
	"fmt"

	"github.com/pelhamfield/palview/resources"
)

func onWindowOpen() (windowGeometry, error) {
	s, err := resources.Read("window")
	if err != nil {
		return windowGeometry{}, err
	}
	if s == "" {
		return windowGeometry{}, nil
	}

	var g windowGeometry

	_, err = fmt.Sscanf(s, "%d %d %d %d", &g.x, &g.y, &g.w, &g.h)
	if err != nil {
		return windowGeometry{}, err
	}

	return g, nil
}

func onWindowClose(geom windowGeometry) error {
	s := fmt.Sprintf("%d %d %d %d", geom.x, geom.y, geom.w, geom.h)
	return resources.Write("window", s)
}
