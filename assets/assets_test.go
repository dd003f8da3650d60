package assets

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testLayout = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="10" tileheight="10" infinite="0">
 <objectgroup id="1" name="page">
  <object id="1" name="tableContainer" x="0" y="0" width="400" height="200"/>
  <object id="2" name="text-right" x="300" y="20" width="80" height="40">
   <properties>
    <property name="label" value="hover me"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const layoutWithoutTrigger = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="10" tileheight="10" infinite="0">
 <objectgroup id="1" name="page">
  <object id="1" name="tableContainer" x="0" y="0" width="400" height="200"/>
 </objectgroup>
</map>
`

const layoutWithoutContainer = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="10" tileheight="10" infinite="0">
 <objectgroup id="1" name="page">
  <object id="2" name="text-right" x="300" y="20" width="80" height="40"/>
 </objectgroup>
</map>
`

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{"page.tmx": {Data: []byte(testLayout)}}

	l, err := LoadLayout(fsys, "page.tmx")
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if l.Width != 400 || l.Height != 200 {
		t.Errorf("size = %dx%d, want 400x200", l.Width, l.Height)
	}
	if l.Container.Rect != (Rect{0, 0, 400, 200}) {
		t.Errorf("container = %+v", l.Container.Rect)
	}
	if l.Trigger.Rect != (Rect{300, 20, 80, 40}) {
		t.Errorf("trigger = %+v", l.Trigger.Rect)
	}
	if l.Trigger.Label != "hover me" {
		t.Errorf("label = %q", l.Trigger.Label)
	}
}

func TestLoadLayoutMissingElements(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"no trigger", layoutWithoutTrigger, ErrNoTrigger},
		{"no container", layoutWithoutContainer, ErrNoContainer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"page.tmx": {Data: []byte(tt.data)}}
			_, err := LoadLayout(fsys, "page.tmx")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	if _, err := LoadLayout(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Error("expected error for missing layout")
	}
}

func TestDefaultLayout(t *testing.T) {
	l := MustLoadDefaultLayout()
	if l.Trigger.Name != TriggerElement {
		t.Errorf("trigger name = %q", l.Trigger.Name)
	}
	if l.Width != 1280 || l.Height != 720 {
		t.Errorf("design size = %dx%d", l.Width, l.Height)
	}
}

func TestLayoutScale(t *testing.T) {
	l := &Layout{Width: 400, Height: 200}
	got := l.Scale(Rect{300, 20, 80, 40}, 800, 100)
	want := Rect{600, 10, 160, 20}
	if got != want {
		t.Errorf("Scale = %+v, want %+v", got, want)
	}
}
