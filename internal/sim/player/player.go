// Package player implements the first-person controller: movement and
// jumping against the collision grid, mouse look, block targeting, and the
// break/place interaction with its overlay meshes.
package player

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gocraft/internal/render"
	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/geom"
	"gocraft/internal/sim/physics"
	"gocraft/internal/sim/tuning"
	"gocraft/internal/sim/world"
)

const (
	eyeHeight    = 1.6
	breakStages  = 5
	groundProbeY = -0.25
)

// hotbar is the fixed starting inventory, by catalog name.
var hotbar = [4]string{"log", "planks", "stone", "glass"}

type Player struct {
	Position mgl32.Vec3
	Camera   *Camera
	Velocity mgl32.Vec3
	OnGround bool

	Holding   catalogs.BlockID
	Inventory [4]catalogs.BlockID

	world *world.World
	cat   *catalogs.Catalogs
	cfg   tuning.Tuning
	box   physics.AABB

	// Block targeting state, refreshed by updateLookingAt.
	lookCell   geom.Vec3i
	lookNormal geom.Normal
	hasLook    bool

	selectionBox *render.Mesh

	placed           bool
	breakingProgress float32
	breakingStage    int
	breakingMesh     *render.Mesh
	breakingSet      *catalogs.TextureSet
	breakingLayers   [breakStages]int
}

// New builds a player standing at pos. The inventory blocks must exist in
// the catalog.
func New(w *world.World, cat *catalogs.Catalogs, cfg tuning.Tuning, pos mgl32.Vec3) (*Player, error) {
	p := &Player{
		Position: pos,
		Camera:   NewCamera(),
		OnGround: true,
		world:    w,
		cat:      cat,
		cfg:      cfg,
		box: physics.AABB{
			Min: mgl32.Vec3{-0.3, 0.2, -0.3},
			Max: mgl32.Vec3{0.3, 1.6, 0.3},
		},
		breakingStage: -1,
		breakingSet:   catalogs.NewTextureSet(),
	}

	for i, name := range hotbar {
		id, ok := cat.Blocks.ByName(name)
		if !ok {
			return nil, fmt.Errorf("player inventory: no block named %q in catalog", name)
		}
		p.Inventory[i] = id
	}
	p.Holding = p.Inventory[0]

	for i := range p.breakingLayers {
		layer, err := p.breakingSet.Add(fmt.Sprintf("breaking_animation%d", i+1))
		if err != nil {
			return nil, err
		}
		p.breakingLayers[i] = layer
	}
	p.breakingSet.Seal()

	p.updateCameraPosition()
	return p, nil
}

// LookingAt reports the targeted block cell and the face it was hit through.
func (p *Player) LookingAt() (geom.Vec3i, geom.Normal, bool) {
	return p.lookCell, p.lookNormal, p.hasLook
}

// The eye sits a fixed height above the feet.
func (p *Player) updateCameraPosition() {
	p.Camera.Position = p.Position.Add(mgl32.Vec3{0, eyeHeight, 0})
}

// Move advances movement physics by one tick. With no movement input and
// both feet on the ground the tick is skipped entirely, so a standing
// player costs nothing.
func (p *Player) Move(in Inputs, dt float32) {
	moving := in.Has(MoveForward) || in.Has(MoveBackward) ||
		in.Has(MoveLeft) || in.Has(MoveRight) || in.Has(Jump)
	if !moving && p.OnGround {
		return
	}

	p.box.Position = p.Position

	var impulse mgl32.Vec3
	yaw := mgl32.DegToRad(p.Camera.Yaw)
	sin, cos := math32.Sin(yaw), math32.Cos(yaw)

	if in.Has(MoveRight) {
		impulse = impulse.Add(mgl32.Vec3{cos, 0, sin})
	}
	if in.Has(MoveForward) {
		impulse = impulse.Add(mgl32.Vec3{sin, 0, -cos})
	}
	if in.Has(MoveLeft) {
		impulse = impulse.Sub(mgl32.Vec3{cos, 0, sin})
	}
	if in.Has(MoveBackward) {
		impulse = impulse.Sub(mgl32.Vec3{sin, 0, -cos})
	}
	impulse = safeNormalize(impulse)

	p.Velocity[0] = impulse.X() * p.cfg.MoveSpeed
	p.Velocity[2] = impulse.Z() * p.cfg.MoveSpeed

	if in.Has(Jump) && p.OnGround {
		p.Velocity[1] = p.cfg.JumpForce
		p.OnGround = false
	}

	if !p.OnGround {
		p.Velocity[1] -= p.cfg.Gravity * dt
		p.Velocity[1] = math32.Max(p.Velocity[1], -p.cfg.TerminalVelocity)

		probe := mgl32.Vec3{0, groundProbeY, 0}
		if n, ok := physics.CollisionNormal(p.world, p.box, probe); ok && n == (mgl32.Vec3{0, 1, 0}) {
			p.OnGround = true
		}
	}

	p.Position = p.Position.Add(physics.ApplyForce(p.world, p.box, p.Velocity.Mul(dt)))

	p.updateCameraPosition()
	p.updateLookingAt()
}

// Look turns the camera by a mouse delta. Sensitivity is scaled by the
// aspect ratio so a wide window does not feel sluggish horizontally.
func (p *Player) Look(dx, dy, aspect, dt float32) {
	sens := p.cfg.LookSensitivity * aspect

	p.Camera.Yaw += dx * sens * dt
	p.Camera.Pitch -= dy * sens * dt

	p.Camera.UpdateRotation()
	p.updateLookingAt()
}

// BreakAndPlace handles the two block-edit actions for one tick. Placing is
// edge-triggered per press, breaking accumulates progress while held and
// resets the moment the button is released or the target changes.
func (p *Player) BreakAndPlace(in Inputs, dt float32) {
	if in.Has(Place) && !p.placed {
		if p.hasLook {
			target := p.lookCell.Add(p.lookNormal.Vec())

			// Never place a block inside the player's own volume.
			p.box.Position = p.Position
			if !containsCell(p.box.OccupiedCells(), target) {
				p.world.SetBlock(target.Vec3(), p.Holding)
				p.hasLook = false
				p.updateLookingAt()
				p.placed = true
			}
		}
	} else if !in.Has(Place) && p.placed {
		p.placed = false
	}

	if in.Has(Break) {
		if p.hasLook {
			def := p.cat.Blocks.Def(p.world.BlockAt(p.lookCell))
			switch {
			case def == nil:
				// The target vanished under us, drop the attempt.
				p.breakingProgress = 0
			case p.breakingProgress >= def.BreakTime:
				p.world.SetBlock(p.lookCell.Vec3(), 0)
				p.breakingProgress = 0
				p.updateLookingAt()
			default:
				p.breakingProgress += dt
			}
			p.updateBreakingDamage()
		}
	} else if p.breakingProgress != 0 {
		p.breakingProgress = 0
		p.updateBreakingDamage()
	}
}

// SwitchBlock selects the held block from the hotbar.
func (p *Player) SwitchBlock(in Inputs) {
	switches := [...]struct {
		input Input
		slot  int
	}{
		{SwitchBlock1, 0},
		{SwitchBlock2, 1},
		{SwitchBlock3, 2},
		{SwitchBlock4, 3},
	}
	for _, s := range switches {
		if in.Has(s.input) {
			p.Holding = p.Inventory[s.slot]
		}
	}
}

// updateBreakingDamage keeps the crack overlay in sync with breaking
// progress. The mesh is only rebuilt when the animation stage changes.
func (p *Player) updateBreakingDamage() {
	if p.breakingProgress == 0 {
		if p.breakingMesh != nil {
			p.world.RemoveOverlay(p.breakingMesh)
			p.breakingMesh = nil
			p.breakingStage = -1
		}
		return
	}

	def := p.cat.Blocks.Def(p.world.BlockAt(p.lookCell))
	if def == nil {
		return
	}

	stage := int(p.breakingProgress / def.BreakTime * 4)
	if stage >= breakStages {
		stage = breakStages - 1
	}
	if stage == p.breakingStage {
		return
	}

	if p.breakingMesh != nil {
		p.world.RemoveOverlay(p.breakingMesh)
		p.breakingMesh.Discard()
	}

	pos := p.lookCell.Vec3().Sub(mgl32.Vec3{0.005, 0.005, 0.005})
	data := render.GenerateCuboid(mgl32.Vec3{1.01, 1.01, 1.01},
		render.UniformLayers(p.breakingLayers[stage]))
	p.breakingMesh = render.NewMesh(pos, data, p.breakingSet, render.CullBack)

	p.world.AddOverlay(p.breakingMesh)
	p.breakingStage = stage
}

// updateLookingAt recasts the targeting ray and maintains the selection box
// overlay. A new target face rebuilds the box with only that face kept, and
// the slight normal offset stops it z-fighting with the block it outlines.
func (p *Player) updateLookingAt() {
	cell, normal, ok := physics.Raycast(p.world, p.Camera.Position, p.Camera.Forward,
		p.cfg.Reach, p.cfg.RaycastStep)

	if ok == p.hasLook && cell == p.lookCell && normal == p.lookNormal {
		return
	}

	p.breakingProgress = 0

	switch {
	case ok && (!p.hasLook || normal != p.lookNormal):
		if p.selectionBox != nil {
			p.world.RemoveOverlay(p.selectionBox)
			if p.selectionBox.Resource() != nil {
				p.selectionBox.Discard()
			}
		}

		excluded := make([]geom.Normal, 0, len(geom.Normals)-1)
		for _, n := range geom.Normals {
			if n != normal {
				excluded = append(excluded, n)
			}
		}

		textures := catalogs.NewTextureSet()
		layer, _ := textures.Add("selection_box")

		pos := cell.Vec3().Add(normal.Vec().Vec3().Mul(0.001))
		data := render.GenerateCuboid(mgl32.Vec3{1, 1, 1},
			render.UniformLayers(layer), excluded...)

		p.selectionBox = render.NewMesh(pos, data, textures, render.CullBack)
		p.world.AddOverlay(p.selectionBox)

	case ok:
		p.selectionBox.Position = cell.Vec3().Add(normal.Vec().Vec3().Mul(0.001))

	case p.selectionBox != nil:
		// Hide rather than rebuild: the single kept face is back-facing
		// under front culling, so the box vanishes until the next hit.
		p.selectionBox.Cull = render.CullFront
	}

	p.lookCell, p.lookNormal, p.hasLook = cell, normal, ok
}

func containsCell(cells []geom.Vec3i, c geom.Vec3i) bool {
	for _, cell := range cells {
		if cell == c {
			return true
		}
	}
	return false
}

func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	if l := v.Len(); l > 0 {
		return v.Mul(1 / l)
	}
	return v
}
