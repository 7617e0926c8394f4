package gui

import (
	"fmt"
	"sync"

	"github.com/dfpsr-go/softcanvas/pixel"
	lua "github.com/yuin/gopher-lua"
)

// ThemeArgs carries the named parameters a class's generator function
// receives: width, height, a base color, and the three interaction
// booleans a control's appearance can depend on. Generators read only the
// fields they care about. themeClassImage fills in the size and the three
// state booleans from the component; it leaves Red, Green and Blue at zero.
type ThemeArgs struct {
	Width, Height           int
	Red, Green, Blue        int32
	Pressed, Focused, Hover bool
}

// ThemeListenMask records which of ThemeArgs' three boolean state fields
// actually change a class's generated image. A theme advertises this per
// class so cached images are invalidated exactly when something the
// generator actually reads has changed, not on every state transition.
type ThemeListenMask uint8

const (
	ListenPressed ThemeListenMask = 1 << iota
	ListenFocused
	ListenHover
)

// ThemeGenerator renders a component class's background image from args.
// It is called at most once per distinct (width, height, listened-state)
// combination; Theme.Image caches the result.
type ThemeGenerator func(args ThemeArgs) pixel.Image

type themeCacheKey struct {
	width, height int
	state         ThemeListenMask
}

// Theme is a named collection of per-class parametric image generators.
// Unlike a flat palette, a Theme answers "what does a Button look like at
// this size, in this state" by invoking that class's registered
// generator and caching the resulting image until the size or a state
// bit the class actually listens to changes.
type Theme struct {
	mu         sync.Mutex
	generators map[string]ThemeGenerator
	listen     map[string]ThemeListenMask
	cache      map[string]map[themeCacheKey]pixel.Image
}

// NewTheme creates a theme with no registered classes.
func NewTheme() *Theme {
	return &Theme{
		generators: make(map[string]ThemeGenerator),
		listen:     make(map[string]ThemeListenMask),
		cache:      make(map[string]map[themeCacheKey]pixel.Image),
	}
}

// Register installs the generator for class, along with the subset of
// Pressed/Focused/Hover it listens to. For a class with no registered
// generator, Image reports false and themeClassImage falls back to a flat
// PlaceholderColor fill.
func (t *Theme) Register(class string, listen ThemeListenMask, gen ThemeGenerator) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generators[class] = gen
	t.listen[class] = listen
	delete(t.cache, class)
}

func packState(listen ThemeListenMask, args ThemeArgs) ThemeListenMask {
	var s ThemeListenMask
	if listen&ListenPressed != 0 && args.Pressed {
		s |= ListenPressed
	}
	if listen&ListenFocused != 0 && args.Focused {
		s |= ListenFocused
	}
	if listen&ListenHover != 0 && args.Hover {
		s |= ListenHover
	}
	return s
}

// Image returns the generated image for class under args, reusing a
// cached image when width, height, and every state bit class listens to
// are unchanged from a previous call.
func (t *Theme) Image(class string, args ThemeArgs) (pixel.Image, bool) {
	t.mu.Lock()
	gen, ok := t.generators[class]
	if !ok {
		t.mu.Unlock()
		return pixel.Image{}, false
	}
	listen := t.listen[class]
	key := themeCacheKey{args.Width, args.Height, packState(listen, args)}
	byKey, ok := t.cache[class]
	if !ok {
		byKey = make(map[themeCacheKey]pixel.Image)
		t.cache[class] = byKey
	}
	if im, ok := byKey[key]; ok && im.IsValid() {
		t.mu.Unlock()
		return im, true
	}
	t.mu.Unlock()

	im := gen(args)
	t.mu.Lock()
	byKey[key] = im
	t.mu.Unlock()
	return im, true
}

// TextColor and PlaceholderColor remain flat colors rather than
// per-class generated images: they drive the font renderer's glyph
// color and the unknown-class placeholder fill, neither of which is a
// sized background a theme would want to cache.
type paletteExtras struct {
	TextColor        pixel.Color
	PlaceholderColor pixel.Color
}

var currentPalette = paletteExtras{
	TextColor:        pixel.RGBA(230, 230, 230, 255),
	PlaceholderColor: pixel.RGBA(220, 40, 40, 255),
}

func flatFill(r, g, b int32, width, height int) pixel.Image {
	im := pixel.New(pixel.FormatRGBA8, width, height)
	pixel.FillRect(im, im.Bounds(), pixel.RGBA(r, g, b, 255))
	return im
}

// DefaultTheme registers the built-in class set with flat per-state fills,
// the simplest possible generator that still honors the parametric
// contract: every class reads Width/Height and fills with a fixed color
// (Red/Green/Blue are not read). Button listens to Pressed and Hover, Menu
// to Pressed, and MenuItem to Hover, to darken or lighten the fill.
func DefaultTheme() *Theme {
	t := NewTheme()
	t.Register("Panel", 0, func(a ThemeArgs) pixel.Image {
		return flatFill(48, 48, 48, a.Width, a.Height)
	})
	t.Register("Toolbar", 0, func(a ThemeArgs) pixel.Image {
		return flatFill(40, 40, 40, a.Width, a.Height)
	})
	t.Register("Button", ListenPressed|ListenHover, func(a ThemeArgs) pixel.Image {
		switch {
		case a.Pressed:
			return flatFill(60, 60, 60, a.Width, a.Height)
		case a.Hover:
			return flatFill(100, 100, 100, a.Width, a.Height)
		default:
			return flatFill(80, 80, 80, a.Width, a.Height)
		}
	})
	t.Register("Menu", ListenPressed, func(a ThemeArgs) pixel.Image {
		if a.Pressed {
			return flatFill(60, 60, 60, a.Width, a.Height)
		}
		return flatFill(80, 80, 80, a.Width, a.Height)
	})
	t.Register("MenuList", 0, func(a ThemeArgs) pixel.Image {
		return flatFill(48, 48, 48, a.Width, a.Height)
	})
	t.Register("MenuItem", ListenHover, func(a ThemeArgs) pixel.Image {
		if a.Hover {
			return flatFill(100, 100, 100, a.Width, a.Height)
		}
		return flatFill(48, 48, 48, a.Width, a.Height)
	})
	return t
}

var (
	currentTheme   = DefaultTheme()
	currentThemeMu sync.Mutex
)

// SetTheme replaces the active theme used by every component's DrawSelf.
func SetTheme(t *Theme) {
	currentThemeMu.Lock()
	currentTheme = t
	currentThemeMu.Unlock()
}

// CurrentTheme returns the active theme.
func CurrentTheme() *Theme {
	currentThemeMu.Lock()
	defer currentThemeMu.Unlock()
	return currentTheme
}

// themeClassImage fetches class's generated image for the given geometry
// and state from the active theme, falling back to a flat placeholder fill
// when the class has no registered generator.
func themeClassImage(class string, r pixel.Rect, pressed, focused, hover bool) pixel.Image {
	args := ThemeArgs{Width: r.Width(), Height: r.Height(), Pressed: pressed, Focused: focused, Hover: hover}
	if im, ok := CurrentTheme().Image(class, args); ok {
		return im
	}
	return flatFill(currentPalette.PlaceholderColor.R, currentPalette.PlaceholderColor.G, currentPalette.PlaceholderColor.B, r.Width(), r.Height())
}

// LoadThemeScript executes a Lua chunk that returns a table keyed by class
// name, each value itself a table with "red"/"green"/"blue" fields and
// optional "pressedRed"/"pressedGreen"/"pressedBlue" and
// "hoverRed"/"hoverGreen"/"hoverBlue" overrides, and installs the result as
// the active theme: listed classes replace their DefaultTheme generators,
// the rest keep them. This lets a theme author reskin component classes
// from one Lua file instead of recompiling.
//
//	return {
//	  Button = {red=80, green=80, blue=80, pressedRed=60, pressedGreen=60, pressedBlue=60},
//	  Panel  = {red=48, green=48, blue=48},
//	}
func LoadThemeScript(source string) error {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoString(source); err != nil {
		return fmt.Errorf("theme script: %w", err)
	}
	ret := L.Get(-1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return fmt.Errorf("theme script must return a table, got %s", ret.Type())
	}
	t := DefaultTheme()
	tbl.ForEach(func(k, v lua.LValue) {
		class, ok := k.(lua.LString)
		if !ok {
			return
		}
		classTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		registerScriptedClass(t, string(class), classTbl)
	})
	SetTheme(t)
	return nil
}

func registerScriptedClass(t *Theme, class string, tbl *lua.LTable) {
	num := func(key string, def int32) int32 {
		n, ok := tbl.RawGetString(key).(lua.LNumber)
		if !ok {
			return def
		}
		return int32(n)
	}
	r, g, b := num("red", 0), num("green", 0), num("blue", 0)
	hasPressed := tbl.RawGetString("pressedRed") != lua.LNil
	hasHover := tbl.RawGetString("hoverRed") != lua.LNil
	if !hasPressed && !hasHover {
		t.Register(class, 0, func(a ThemeArgs) pixel.Image {
			return flatFill(r, g, b, a.Width, a.Height)
		})
		return
	}
	pr, pg, pb := num("pressedRed", r), num("pressedGreen", g), num("pressedBlue", b)
	hr, hg, hb := num("hoverRed", r), num("hoverGreen", g), num("hoverBlue", b)
	var mask ThemeListenMask
	if hasPressed {
		mask |= ListenPressed
	}
	if hasHover {
		mask |= ListenHover
	}
	t.Register(class, mask, func(a ThemeArgs) pixel.Image {
		switch {
		case hasPressed && a.Pressed:
			return flatFill(pr, pg, pb, a.Width, a.Height)
		case hasHover && a.Hover:
			return flatFill(hr, hg, hb, a.Width, a.Height)
		default:
			return flatFill(r, g, b, a.Width, a.Height)
		}
	})
}
