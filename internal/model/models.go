package model

// All lists the models in dependency order, parents first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Widget{},
		&Layout{},
		&Set{},
		&LayoutWidget{},
		&SetLayout{},
	}
}
