// Package terra is the façade over rtin: the small surface application code
// actually imports to turn a heightmap into a mesh, the same way package
// detour sits in front of recast in the teacher toolkit this one is built
// alongside.
package terra
