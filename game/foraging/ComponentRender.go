package foraging

type Render struct {
	type_  string
	static bool
}

func (game *ForagingGame) CastRender(data interface{}) *Render {
	return data.(*Render)
}

func (r Render) GetType() string {
	return r.type_
}
