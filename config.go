// seehuhn.de/go/racetrack - rounded track outlines from rectilinear waypoints
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package racetrack

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadConfig reads a JSON configuration from r.  Fields missing from the
// input keep their values from DefaultConfig.  Unknown fields are an error.
//
// Example:
//
//	{
//	  "outer": {"radius": 12, "style": {"color": "#222", "width": 6}},
//	  "startLine": {"color": "red", "width": 1}
//	}
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("racetrack: reading config: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadConfigFile reads a JSON configuration from the named file.
func ReadConfigFile(name string) (cfg Config, err error) {
	f, err := os.Open(name)
	if err != nil {
		return Config{}, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return ReadConfig(f)
}
