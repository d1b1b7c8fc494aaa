package main

import (
	"image/color"

	"github.com/milk9111/furi/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	menuTextColor = color.NRGBA{R: 0xf4, G: 0xe9, B: 0xd8, A: 0xff}
	hintTextColor = color.NRGBA{R: 0xe0, G: 0xc0, B: 0x80, A: 0xff}
)

// MenuUI holds the widgets the game updates after building the UI.
type MenuUI struct {
	menu     *widget.Container
	hud      *widget.Container
	dialogue *widget.Text
	hint     *widget.Text
}

// SetMenuVisible shows the start menu or the in-game HUD.
func (m *MenuUI) SetMenuVisible(visible bool) {
	if visible {
		m.menu.GetWidget().Visibility = widget.Visibility_Show
		m.hint.Label = ""
		return
	}
	m.menu.GetWidget().Visibility = widget.Visibility_Hide
}

// SetDialogue updates the panel line and the talk hint.
func (m *MenuUI) SetDialogue(line, hint string) {
	m.dialogue.Label = line
	m.hint.Label = hint
	if line == "" && hint == "" {
		m.hud.GetWidget().Visibility = widget.Visibility_Hide
		return
	}
	m.hud.GetWidget().Visibility = widget.Visibility_Show
}

// NewMenuUI builds the start menu (Play, Tutorial, Settings, Customize) and
// the dialogue panel along the bottom edge.
func NewMenuUI(g *Game) (*ebitenui.UI, *MenuUI) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x1a, G: 0x14, B: 0x10, A: 210})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x5b, G: 0x4b, B: 0x3d, A: 255})
	btnHoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x7a, G: 0x66, B: 0x52, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: menuTextColor}

	title := widget.NewText(
		widget.TextOpts.Text("Kingdom Furi", &face, menuTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHoverImg, Pressed: btnHoverImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(160, 32),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
					Stretch:  true,
				}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	menu := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/4, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	menu.AddChild(title)
	menu.AddChild(button("Play", func() { g.Start(false) }))
	menu.AddChild(button("Tutorial", func() { g.Start(true) }))
	menu.AddChild(button("Settings", func() { g.MenuLine("settings") }))
	menu.AddChild(button("Customize", func() { g.MenuLine("customize") }))

	dialogueText := widget.NewText(
		widget.TextOpts.Text("", &face, menuTextColor),
	)
	hintText := widget.NewText(
		widget.TextOpts.Text("", &face, hintTextColor),
	)

	hud := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 18, Right: 18}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth*2/3, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	hud.AddChild(dialogueText)
	hud.AddChild(hintText)
	hud.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(hud)
	root.AddChild(menu)

	ui := &ebitenui.UI{Container: root}
	return ui, &MenuUI{menu: menu, hud: hud, dialogue: dialogueText, hint: hintText}
}
