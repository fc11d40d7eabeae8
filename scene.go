package signal

import "github.com/google/uuid"

// Builder is a chainable scene-construction helper over a World (§4.10),
// grounded on the teacher's Commands pattern: each With* call mutates the
// entity under construction and returns the Builder so calls read as a
// pipeline, with the terminal Build call surfacing the first error any
// step produced.
type Builder struct {
	world *World
	id    EntityID
	mask  ComponentBits
	err   error
}

// NewBuilder creates a new entity in world and starts a Builder for it.
// If the world is full, every subsequent With* call is a no-op and
// Build returns the original ErrWorldFull.
func NewBuilder(world *World) *Builder {
	id, err := world.CreateEntity()
	return &Builder{world: world, id: id, err: err}
}

func (b *Builder) failed() bool {
	return b.err != nil
}

// WithTransform attaches a Transform component, defaulting scale to one
// and rotation to identity, then sets Position and Rotation from the
// arguments.
func (b *Builder) WithTransform(position Vec3, rotation Quat) *Builder {
	if b.failed() {
		return b
	}
	b.mask |= ComponentTransform
	if err := b.world.AddComponents(b.id, b.mask); err != nil {
		b.err = err
		return b
	}
	tr := b.world.Transform(b.id)
	if tr != nil {
		tr.SetPosition(position)
		tr.SetRotation(rotation)
	}
	return b
}

// WithPhysics attaches a Physics component and sets its mass and 6-DOF flag.
func (b *Builder) WithPhysics(mass float32, momentOfInertia Vec3, has6DOF bool) *Builder {
	if b.failed() {
		return b
	}
	b.mask |= ComponentPhysics
	if err := b.world.AddComponents(b.id, b.mask); err != nil {
		b.err = err
		return b
	}
	phys := b.world.Physics(b.id)
	if phys != nil {
		phys.Mass = mass
		phys.MomentOfInertia = momentOfInertia
		phys.Has6DOF = has6DOF
	}
	return b
}

// WithThrusters attaches a ThrusterSystem component.
func (b *Builder) WithThrusters(maxLinear, maxAngular Vec3, responseTimeSeconds float32) *Builder {
	if b.failed() {
		return b
	}
	b.mask |= ComponentThrusterSystem
	if err := b.world.AddComponents(b.id, b.mask); err != nil {
		b.err = err
		return b
	}
	th := b.world.ThrusterSystem(b.id)
	if th != nil {
		th.MaxLinearForce = maxLinear
		th.MaxAngularTorque = maxAngular
		th.ResponseTimeSeconds = responseTimeSeconds
		th.AtmosphereEfficiency = 1
		th.VacuumEfficiency = 1
		th.Enabled = true
	}
	return b
}

// WithControl attaches a ControlAuthority component owned by controller.
func (b *Builder) WithControl(controller EntityID, sensitivity float32) *Builder {
	if b.failed() {
		return b
	}
	b.mask |= ComponentControlAuthority
	if err := b.world.AddComponents(b.id, b.mask); err != nil {
		b.err = err
		return b
	}
	ca := b.world.ControlAuthority(b.id)
	if ca != nil {
		ca.ControlledBy = controller
		ca.Sensitivity = sensitivity
	}
	return b
}

// WithCamera attaches a Camera component following target.
func (b *Builder) WithCamera(target EntityID, fovDegrees float32) *Builder {
	if b.failed() {
		return b
	}
	b.mask |= ComponentCamera
	if err := b.world.AddComponents(b.id, b.mask); err != nil {
		b.err = err
		return b
	}
	cam := b.world.Camera(b.id)
	if cam != nil {
		cam.FollowTarget = target
		cam.FOVDegrees = fovDegrees
		cam.NearPlane = 0.1
		cam.FarPlane = 10000
		cam.Up = Vec3{0, 1, 0}
	}
	return b
}

// WithRenderable attaches a Renderable component.
func (b *Builder) WithRenderable(mesh, material uuid.UUID) *Builder {
	if b.failed() {
		return b
	}
	b.mask |= ComponentRenderable
	if err := b.world.AddComponents(b.id, b.mask); err != nil {
		b.err = err
		return b
	}
	r := b.world.Renderable(b.id)
	if r != nil {
		r.MeshHandle = mesh
		r.MaterialHandle = material
		r.Visible = true
	}
	return b
}

// Build returns the constructed entity and the first error encountered
// by any With* step, if any.
func (b *Builder) Build() (EntityID, error) {
	return b.id, b.err
}
