package ui

import "testing"

func press(x, y float64) Pointer { return Pointer{X: x, Y: y, Pressed: true} }

func TestSlider_Update(t *testing.T) {
	s := NewSlider("Speed", 0, 10, 5)
	s.place(100, 50, 200) // track at y=66

	tests := []struct {
		name string
		ptr  Pointer
		want float64
	}{
		{"released does nothing", Pointer{X: 150, Y: 70}, 5},
		{"outside track", press(50, 70), 5},
		{"left edge", press(100, 70), 0},
		{"quarter", press(150, 70), 2.5},
		{"right edge", press(300, 70), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Update(tt.ptr)
			if s.Value != tt.want {
				t.Errorf("Value = %v; want %v", s.Value, tt.want)
			}
		})
	}
}

func TestSlider_Clamp(t *testing.T) {
	s := NewSlider("x", 1, 2, 7)
	if s.Value != 2 {
		t.Errorf("NewSlider(value above max).Value = %v; want 2", s.Value)
	}
	s.SetValue(-3)
	if s.Value != 1 || s.Ratio() != 0 {
		t.Errorf("SetValue(-3) -> Value %v Ratio %v; want 1, 0", s.Value, s.Ratio())
	}
	flat := NewSlider("flat", 3, 3, 3)
	if flat.Ratio() != 0 {
		t.Errorf("Ratio() with Min == Max = %v; want 0", flat.Ratio())
	}
}

func TestCheckbox_TogglesOncePerPress(t *testing.T) {
	c := NewCheckbox("Show", false)
	c.place(10, 10, 0)

	c.Update(press(15, 15))
	c.Update(press(15, 15)) // still held
	if !c.Value {
		t.Fatal("Value = false after first press; want true")
	}
	c.Update(Pointer{X: 15, Y: 15})
	c.Update(press(15, 15))
	if c.Value {
		t.Error("Value = true after second press; want false")
	}
	c.Update(Pointer{})
	c.Update(press(100, 100))
	if c.Value {
		t.Error("press outside the box toggled it")
	}
}

func TestButton_ClickOnce(t *testing.T) {
	clicks := 0
	b := NewButton("Pause", func() { clicks++ })
	b.place(0, 0, 80)

	for i := 0; i < 3; i++ {
		b.Update(press(10, 10))
	}
	b.Update(Pointer{X: 10, Y: 10})
	b.Update(press(10, 10))
	if clicks != 2 {
		t.Errorf("clicks = %d; want 2", clicks)
	}
}

func TestPanel_LayoutAndScroll(t *testing.T) {
	p := NewPanel(0, 0, 200, 150)
	p.AddSection("Rules")
	first := p.AddSlider("Align", 0, 1, 0.5)
	for i := 0; i < 5; i++ {
		p.AddSlider("filler", 0, 1, 0)
	}
	last := p.AddCheckbox("Show", false)

	// title 30 + section 25 + 6 sliders * 36 + checkbox 22
	if got := p.ContentHeight(); got != 293 {
		t.Fatalf("ContentHeight() = %v; want 293", got)
	}
	if got := p.MaxScroll(); got != 153 {
		t.Fatalf("MaxScroll() = %v; want 153", got)
	}
	if first.Y != 71 {
		t.Errorf("first slider track Y = %v; want 71", first.Y)
	}
	if p.visible(len(p.widgets) - 1) {
		t.Error("checkbox below the fold reported visible")
	}

	// scrolling far down clamps to MaxScroll
	p.Update(Pointer{X: 10, Y: 10, WheelY: -100})
	if p.Scroll != p.MaxScroll() {
		t.Errorf("Scroll = %v; want %v", p.Scroll, p.MaxScroll())
	}
	if !p.visible(len(p.widgets) - 1) {
		t.Error("checkbox not visible after scrolling to the end")
	}

	// clicks reach the now visible checkbox
	p.Update(press(last.X+1, last.Y+1))
	if !last.Value {
		t.Error("checkbox did not toggle through the panel")
	}

	// wheel outside the panel is ignored
	p.Update(Pointer{X: 500, Y: 10, WheelY: 5})
	if p.Scroll != p.MaxScroll() {
		t.Errorf("wheel outside panel moved Scroll to %v", p.Scroll)
	}
	p.Update(Pointer{X: 10, Y: 10, WheelY: 100})
	if p.Scroll != 0 {
		t.Errorf("Scroll = %v after scrolling back up; want 0", p.Scroll)
	}
}
