package scene

// TerrainUniforms are the locations shared by both terrain variants.
type TerrainUniforms struct {
	Projection       int32 `uniform:"uProjection"`
	View             int32 `uniform:"uView"`
	World            int32 `uniform:"uWorld"`
	Texture          int32 `uniform:"uTexture"`
	EnableLighting   int32 `uniform:"uEnableLighting"`
	AmbientColor     int32 `uniform:"uAmbientColor"`
	AmbientIntensity int32 `uniform:"uAmbientIntensity"`
	LightDirection   int32 `uniform:"uLightDirection"`
	DiffuseColor     int32 `uniform:"uDiffuseColor"`
	DiffuseIntensity int32 `uniform:"uDiffuseIntensity"`
}

// ClippedTerrainUniforms is the terrain block of the capture passes.
type ClippedTerrainUniforms struct {
	TerrainUniforms
	ClipPlane int32 `uniform:"uClipPlane"`
}

// WaterUniforms are the water surface locations. The wave terms only exist
// in the WAVES variant.
type WaterUniforms struct {
	Projection     int32 `uniform:"uProjection"`
	View           int32 `uniform:"uView"`
	World          int32 `uniform:"uWorld"`
	ReflectionView int32 `uniform:"uReflectionView"`

	Refraction int32 `uniform:"uRefraction"`
	Reflection int32 `uniform:"uReflection"`

	WaterColor       int32 `uniform:"uWaterColor"`
	EnableRefraction int32 `uniform:"uEnableRefraction"`
	EnableReflection int32 `uniform:"uEnableReflection"`
	EnableFresnel    int32 `uniform:"uEnableFresnel"`
	EnableSpecular   int32 `uniform:"uEnableSpecular"`
	MergeTerm        int32 `uniform:"uMergeTerm"`

	WaveMap0         int32 `uniform:"uWaveMap0,optional"`
	WaveMap1         int32 `uniform:"uWaveMap1,optional"`
	WaveOffset0      int32 `uniform:"uWaveOffset0,optional"`
	WaveOffset1      int32 `uniform:"uWaveOffset1,optional"`
	WaveTextureScale int32 `uniform:"uWaveTextureScale,optional"`

	CameraPosition int32 `uniform:"uCameraPosition"`
	SunColor       int32 `uniform:"uSunColor"`
	SunDirection   int32 `uniform:"uSunDirection"`
	SunFactor      int32 `uniform:"uSunFactor"`
	SunPower       int32 `uniform:"uSunPower"`
}

// SkyboxUniforms are the sky cube locations.
type SkyboxUniforms struct {
	Projection int32 `uniform:"uProjection"`
	View       int32 `uniform:"uView"`
	World      int32 `uniform:"uWorld"`
	Skybox     int32 `uniform:"uSkybox"`
}

func boolUniform(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
