package entity

// Renderer receives the draw calls of one simulation frame
type Renderer interface {
	Clear()
	RenderShip(ship *SpaceObject)
	RenderAsteroid(asteroid *SpaceObject)
	RenderBullet(bullet *SpaceObject)
	RenderScore(score int)
	Present()
}
