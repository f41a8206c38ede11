// Package navmesh consumes a flattened triangle soup and produces a
// walkable-surface navigation mesh via voxel heightfield rasterization,
// plus the binary and glTF encodings of the result.
package navmesh

import "fmt"

// Hard limits on build settings. Values below these produce voxel grids
// that are either meaningless or unboundedly large.
const (
	minCellSize    = 0.01
	minAgentRadius = 0.05
	minAgentHeight = 0.001
	maxSlopeLimit  = 90.0
)

// maxGridCells caps the heightfield footprint (width * depth).
const maxGridCells = 64 << 20

// Settings controls the voxelization and walkability tests.
// All distances are in world units, the slope is in degrees.
type Settings struct {
	CellSize    float32 `yaml:"cell_size"`    // xz voxel size
	CellHeight  float32 `yaml:"cell_height"`  // y voxel size
	AgentRadius float32 `yaml:"agent_radius"` // walkable area erosion distance
	AgentHeight float32 `yaml:"agent_height"` // minimum clearance above a floor
	AgentClimb  float32 `yaml:"agent_climb"`  // maximum traversable ledge height
	MaxSlopeDeg float32 `yaml:"max_slope"`    // steepest walkable surface angle

	// MinRegionArea drops isolated walkable islands smaller than this
	// many voxel columns.
	MinRegionArea int `yaml:"min_region_area"`
}

// DefaultSettings returns build settings sized for a human-scale agent.
func DefaultSettings() Settings {
	return Settings{
		CellSize:      0.3,
		CellHeight:    0.2,
		AgentRadius:   0.6,
		AgentHeight:   2.0,
		AgentClimb:    0.9,
		MaxSlopeDeg:   45,
		MinRegionArea: 8,
	}
}

// Validate rejects out-of-range settings rather than clamping them, so a
// bad config fails loudly instead of building a subtly wrong mesh.
func (s Settings) Validate() error {
	if s.CellSize < minCellSize {
		return fmt.Errorf("cell_size %g below minimum %g", s.CellSize, minCellSize)
	}
	if s.CellHeight < minCellSize {
		return fmt.Errorf("cell_height %g below minimum %g", s.CellHeight, minCellSize)
	}
	if s.AgentRadius < minAgentRadius {
		return fmt.Errorf("agent_radius %g below minimum %g", s.AgentRadius, minAgentRadius)
	}
	if s.AgentHeight < minAgentHeight {
		return fmt.Errorf("agent_height %g below minimum %g", s.AgentHeight, minAgentHeight)
	}
	if s.AgentClimb < 0 {
		return fmt.Errorf("agent_climb %g must not be negative", s.AgentClimb)
	}
	if s.MaxSlopeDeg < 0 || s.MaxSlopeDeg >= maxSlopeLimit {
		return fmt.Errorf("max_slope %g outside [0, %g)", s.MaxSlopeDeg, float32(maxSlopeLimit))
	}
	if s.MinRegionArea < 0 {
		return fmt.Errorf("min_region_area %d must not be negative", s.MinRegionArea)
	}
	return nil
}
