package engine

import "math"

// ProbeSides reports which sides of a box centered at (posX, posY) touch a
// collidable cell. Each side carries two hot spots on the box edge, a
// quarter of the box size either side of the edge's midpoint; a side is
// blocked when either hot spot lands in a collidable cell. Hot spots off the
// grid read as open.
func (g *MapGrid) ProbeSides(posX, posY, scaleX, scaleY float64) Side {
	var s Side

	halfX, halfY := scaleX/2, scaleY/2
	quarterX, quarterY := scaleX/4, scaleY/4

	if g.CollidableAt(posX+halfX, posY+quarterY) || g.CollidableAt(posX+halfX, posY-quarterY) {
		s |= SideRight
	}
	if g.CollidableAt(posX-halfX, posY+quarterY) || g.CollidableAt(posX-halfX, posY-quarterY) {
		s |= SideLeft
	}
	if g.CollidableAt(posX+quarterX, posY+halfY) || g.CollidableAt(posX-quarterX, posY+halfY) {
		s |= SideTop
	}
	if g.CollidableAt(posX+quarterX, posY-halfY) || g.CollidableAt(posX-quarterX, posY-halfY) {
		s |= SideBottom
	}
	return s
}

// SnapToCell moves a coordinate to the center of the cell containing it.
func SnapToCell(c float64) float64 {
	return math.Floor(c) + 0.5
}
