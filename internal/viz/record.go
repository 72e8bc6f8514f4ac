package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"
)

const (
	charW = 8
	charH = 16
)

// Recorder rasterises canvas snapshots into GIF frames.
type Recorder struct {
	frames []*image.Paletted
}

func NewRecorder() *Recorder {
	return &Recorder{frames: make([]*image.Paletted, 0)}
}

func (r *Recorder) Len() int { return len(r.frames) }

// Capture draws every set braille dot of c as a white block.
func (r *Recorder) Capture(c *Canvas) {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), color.Palette{color.Black, color.White})
	dotW, dotH := charW/2, charH/4

	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - brailleBlank)
			if pattern <= 0 {
				continue
			}
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Save writes the captured frames as a looping GIF. Nothing is written when no
// frame was captured.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
