package maze

// Link names an open passage by the cells it joins.
type Link struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}

// Links returns every open passage of r once, scanning cells row by row and
// reporting the passage to the right before the one below.
func Links(r Reader) []Link {
	var links []Link
	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			st := r.State(Pos{Col: col, Row: row})
			if st.Open[Right] {
				links = append(links, Link{From: st.Pos, To: Pos{Col: col + 1, Row: row}})
			}
			if st.Open[Down] {
				links = append(links, Link{From: st.Pos, To: Pos{Col: col, Row: row + 1}})
			}
		}
	}
	return links
}
