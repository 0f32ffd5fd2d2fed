package raymath

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// RotationKeyframe is a single keyframe of a RotationTrack. The tangents are only
// meaningful for cubic spline tracks; glTF stores them per keyframe, in value units per
// second, alongside the rotation itself.
type RotationKeyframe struct {
	Time       Seconds
	Rotation   Quaternion
	InTangent  Quaternion
	OutTangent Quaternion
}

// RotationTrack is a keyframed quaternion animation channel, as read from a glTF
// rotation sampler. Sampling implements the three interpolation modes of the glTF 2.0
// animation spec.
type RotationTrack struct {
	// Name identifies the track as "animation/node".
	Name          string
	Interpolation gltf.Interpolation
	Keyframes     []RotationKeyframe
}

// Length returns the time of the last keyframe.
func (track *RotationTrack) Length() Seconds {
	if len(track.Keyframes) == 0 {
		return 0
	}
	return track.Keyframes[len(track.Keyframes)-1].Time
}

// Sample returns the track's rotation at the given time. Times outside the keyframe
// range clamp to the first or last keyframe; an empty track samples as the identity.
func (track *RotationTrack) Sample(t Seconds) Quaternion {
	keyframes := track.Keyframes

	if len(keyframes) == 0 {
		return QuaternionIdentity
	}
	if t <= keyframes[0].Time {
		return keyframes[0].Rotation
	}
	if last := keyframes[len(keyframes)-1]; t >= last.Time {
		return last.Rotation
	}

	next := 1
	for keyframes[next].Time < t {
		next++
	}
	prev := next - 1

	span := keyframes[next].Time - keyframes[prev].Time
	amount := Percent((t - keyframes[prev].Time) / span)

	switch track.Interpolation {
	case gltf.InterpolationStep:
		return keyframes[prev].Rotation
	case gltf.InterpolationCubicSpline:
		// glTF's Hermite basis expects tangents scaled by the keyframe interval.
		m0 := keyframes[prev].OutTangent.Scale(float32(span))
		m1 := keyframes[next].InTangent.Scale(float32(span))
		return keyframes[prev].Rotation.CubicHermiteSpline(m0, keyframes[next].Rotation, m1, float32(amount))
	default:
		return keyframes[prev].Rotation.Slerp(keyframes[next].Rotation, amount)
	}
}

// LoadRotationTracks reads every rotation channel of every animation in the document
// into RotationTracks. Channels animating other paths (translation, scale, weights) are
// skipped; mesh and texture data is never touched.
func LoadRotationTracks(doc *gltf.Document) ([]*RotationTrack, error) {
	tracks := []*RotationTrack{}

	for _, gltfAnim := range doc.Animations {

		for _, channel := range gltfAnim.Channels {

			if channel.Target.Path != gltf.TRSRotation {
				continue
			}

			sampler := gltfAnim.Samplers[channel.Sampler]

			nodeName := "root"
			if channel.Target.Node != nil {
				nodeName = doc.Nodes[*channel.Target.Node].Name
			}

			id, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Input], nil)
			if err != nil {
				return nil, fmt.Errorf("reading sampler input for node %s: %w", nodeName, err)
			}

			inputData := id.([]float32)

			od, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Output], nil)
			if err != nil {
				return nil, fmt.Errorf("reading sampler output for node %s: %w", nodeName, err)
			}

			outputData := od.([][4]float32)

			track := &RotationTrack{
				Name:          fmt.Sprintf("%s/%s", gltfAnim.Name, nodeName),
				Interpolation: sampler.Interpolation,
			}

			for i, t := range inputData {

				keyframe := RotationKeyframe{Time: Seconds(t)}

				if sampler.Interpolation == gltf.InterpolationCubicSpline {
					// Cubic output comes in triplets: in-tangent, value, out-tangent.
					in := outputData[i*3]
					value := outputData[i*3+1]
					out := outputData[i*3+2]
					keyframe.InTangent = NewQuaternion(in[0], in[1], in[2], in[3])
					keyframe.Rotation = NewQuaternion(value[0], value[1], value[2], value[3])
					keyframe.OutTangent = NewQuaternion(out[0], out[1], out[2], out[3])
				} else {
					value := outputData[i]
					keyframe.Rotation = NewQuaternion(value[0], value[1], value[2], value[3])
				}

				track.Keyframes = append(track.Keyframes, keyframe)
			}

			tracks = append(tracks, track)
		}
	}

	return tracks, nil
}
