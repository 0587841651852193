package shader

import (
	"solar-raster/internal/color"
	"solar-raster/internal/noise"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Palettes. Kept as package values so every surface shares one definition of each tone.
var (
	white = color.New(255, 255, 255)

	starYellow = color.New(255, 220, 100)
	starOrange = color.New(255, 150, 50)
	starRed    = color.New(255, 80, 30)

	ocean    = color.New(20, 80, 180)
	shallow  = color.New(40, 120, 200)
	sand     = color.New(220, 200, 150)
	grass    = color.New(60, 140, 60)
	forest   = color.New(30, 100, 40)
	mountain = color.New(120, 120, 120)
	snow     = color.New(240, 250, 255)

	lightBand  = color.New(220, 200, 170)
	darkBand   = color.New(180, 130, 90)
	orangeBand = color.New(200, 150, 100)
	redStorm   = color.New(200, 80, 60)

	iceBlue  = color.New(180, 220, 255)
	deepBlue = color.New(100, 150, 220)
	iceWhite = color.New(230, 240, 255)

	blackRock  = color.New(40, 30, 30)
	grayRock   = color.New(80, 70, 70)
	lavaOrange = color.New(255, 120, 30)
	lavaYellow = color.New(255, 200, 50)

	moonLight  = color.New(200, 200, 200)
	moonDark   = color.New(120, 120, 120)
	moonCrater = color.New(80, 80, 80)

	ringLight = color.New(200, 180, 160)
	ringDark  = color.New(120, 110, 100)
	ringGap   = color.Black

	hullGold  = color.New(200, 170, 50)
	hullPanel = color.New(220, 190, 70)
)

// spherical returns (theta, phi) of p: theta = atan2(y, x) in (-pi, pi], phi = acos(z/|p|) in [0, pi].
// The origin maps to (0, 0).
func spherical(p mgl32.Vec3) (theta, phi float32) {
	theta = math32.Atan2(p.Y(), p.X())
	r := p.Len()
	if r == 0 {
		return theta, 0
	}
	return theta, math32.Acos(mgl32.Clamp(p.Z()/r, -1, 1))
}

// StarColor is a radial gradient from a white-yellow core to an orange-red limb, darkened by
// drifting sunspots, modulated by animated flares and brightened by a corona term.
func StarColor(p mgl32.Vec3, time float32) color.Color {
	distance := p.Len()
	radial := 1 - min(distance*0.8, 1)

	sunspots := float32(1)
	if noise.FractalSum(p.X()*3+time*0.5, p.Y()*3, 4) > 0.6 {
		sunspots = 0.7
	}

	flareNoise := noise.FractalSum(p.X()*5+time*2, p.Y()*5+math32.Sin(time*1.5)*0.5, 3)
	flares := mgl32.Clamp(flareNoise*0.3+0.7, 0.5, 1)

	corona := math32.Pow(max(1-distance, 0), 0.3) * 0.5

	var base color.Color
	switch {
	case radial > 0.7:
		base = starYellow.Scale(0.7).Add(white.Scale(0.3))
	case radial > 0.4:
		k := (radial - 0.4) * 3.33
		base = starYellow.Scale(k).Add(starOrange.Scale(1 - k))
	default:
		k := radial * 2.5
		base = starOrange.Scale(k).Add(starRed.Scale(1 - k))
	}
	return base.Scale(sunspots * flares).Add(white.Scale(corona))
}

// RockyPlanetColor maps continents, shallow and deep ocean, elevation bands, polar caps and
// drifting clouds over the sphere. The whole surface rotates slowly with time.
func RockyPlanetColor(p mgl32.Vec3, time float32) color.Color {
	theta, phi := spherical(p)
	theta += time * 0.1

	landNoise := noise.FractalSum(theta*3, phi*3, 5)
	elevation := noise.FractalSum(theta*10, phi*10, 3)

	var clouds float32
	if noise.FractalSum(theta*5-time*0.5, phi*5, 3) > 0.6 {
		clouds = 0.3
	}

	pole := phi / math32.Pi
	var base color.Color
	switch {
	case pole < 0.15 || pole > 0.85:
		base = snow
	case landNoise > 0.5:
		switch {
		case elevation > 0.7:
			base = mountain
		case elevation > 0.55:
			base = forest
		case elevation > 0.45:
			base = grass
		default:
			base = sand
		}
	case landNoise > 0.45:
		base = shallow
	default:
		base = ocean
	}
	return base.Scale(1 - clouds).Add(white.Scale(clouds))
}

// GasGiantColor layers latitude bands, turbulence, an off-centre storm and an intensity
// variation. Bands drift with time.
func GasGiantColor(p mgl32.Vec3, time float32) color.Color {
	latitude := p.Y() + time*0.05

	band := math32.Sin(latitude*8)*0.5 + 0.5
	turbulence := noise.FractalSum(p.X()*10+time*0.3, latitude*5, 4)

	sx := p.X() - 0.3
	sy := p.Y() + 0.1
	spotDistance := math32.Sqrt(sx*sx + sy*sy)
	var storm float32
	if spotDistance < 0.4 {
		storm = (1 - spotDistance/0.4) * noise.FractalSum(p.X()*20+time, p.Y()*20, 2)
	}

	variation := noise.FractalSum(p.X()*15, latitude*8, 2)

	var banded color.Color
	if band > 0.5 {
		banded = lightBand.Scale(min(band*1.5, 1)).Add(orangeBand.Scale(1 - band))
	} else {
		banded = darkBand.Scale(min((1-band)*1.5, 1)).Add(orangeBand.Scale(band))
	}
	turbulent := banded.Scale(0.8 + turbulence*0.4)
	stormy := turbulent.Scale(1 - storm).Add(redStorm.Scale(storm))
	return stormy.Scale(0.7 + variation*0.3)
}

// IcePlanetColor picks white, ice blue or deep blue from an ice noise and darkens crack lines.
func IcePlanetColor(p mgl32.Vec3, time float32) color.Color {
	theta, phi := spherical(p)
	theta += time * 0.15

	ice := noise.FractalSum(theta*8, phi*8, 4)
	cracks := noise.FractalSum(theta*20, phi*20, 2)

	var base color.Color
	switch {
	case ice > 0.6:
		base = iceWhite
	case ice > 0.4:
		base = iceBlue
	default:
		base = deepBlue
	}
	if cracks > 0.7 {
		return base.Scale(0.7)
	}
	return base
}

// VolcanicPlanetColor is dark rock crossed by flowing, pulsing lava.
func VolcanicPlanetColor(p mgl32.Vec3, time float32) color.Color {
	theta, phi := spherical(p)

	lavaFlow := noise.FractalSum(theta*5+time*2, phi*5+time, 3)
	rock := noise.FractalSum(theta*10, phi*10, 4)

	if lavaFlow > 0.6 {
		heat := mgl32.Clamp(lavaFlow*0.5+0.5, 0, 1)
		lava := lavaOrange.Scale(1 - heat).Add(lavaYellow.Scale(heat))
		return lava.Scale(0.8 + math32.Sin(time*5)*0.2)
	}
	if rock > 0.5 {
		return grayRock
	}
	return blackRock
}

// MoonColor is a static three-tier crater map.
func MoonColor(p mgl32.Vec3) color.Color {
	theta, phi := spherical(p)
	craters := noise.FractalSum(theta*15, phi*15, 4)
	switch {
	case craters > 0.7:
		return moonCrater
	case craters > 0.4:
		return moonLight
	default:
		return moonDark
	}
}

// RingColor shades a ring lying in the XZ plane by its radial distance: periodic gaps,
// then light or dark particle bands.
func RingColor(p mgl32.Vec3) color.Color {
	distance := math32.Sqrt(p.X()*p.X() + p.Z()*p.Z())
	if math32.Sin(distance*20) > 0.8 {
		return ringGap
	}
	if noise.FractalSum(distance*30, p.Y()*50, 3) > 0.6 {
		return ringLight.Scale(0.8)
	}
	return ringDark.Scale(0.6)
}

// SpaceshipColor is a gold hull with brighter panels.
func SpaceshipColor(p mgl32.Vec3) color.Color {
	panel := math32.Abs(math32.Sin(p.X()*5) * math32.Cos(p.Y()*5))
	if panel > 0.7 {
		return hullPanel
	}
	return hullGold
}
