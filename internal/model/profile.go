package model

// ProfileUpdate: частичное обновление строки usuario (одна на пользователя, id совпадает с id в auth).
type ProfileUpdate struct {
	NameUser *string `json:"nameUser"`
	Cel      *string `json:"cel"`
}

func (u ProfileUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.NameUser != nil {
		cols["nameUser"] = *u.NameUser
	}
	if u.Cel != nil {
		cols["cel"] = *u.Cel
	}
	return cols
}
