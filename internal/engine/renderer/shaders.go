package renderer

const litVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat3 uNormal;
uniform mat4 uView;
uniform mat4 uProj;
uniform mat4 uAspect;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = uNormal * aNormal;
	gl_Position = uAspect * uProj * uView * world;
}
`

const litFragmentSrc = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 uColor;
uniform vec3 uEye;
uniform vec3 uLight;
uniform bool uFlat;
uniform float uReflect;
uniform samplerCube uDepthMap;
uniform float uFar;
uniform bool uRedShadow;

out vec4 FragColor;

float shadowFactor() {
	vec3 toFrag = vWorldPos - uLight;
	float closest = texture(uDepthMap, toFrag).r * uFar;
	float current = length(toFrag);
	return current - 0.05 > closest ? 1.0 : 0.0;
}

void main() {
	vec3 n = uFlat ? normalize(cross(dFdx(vWorldPos), dFdy(vWorldPos))) : normalize(vNormal);
	vec3 l = normalize(uLight - vWorldPos);
	vec3 v = normalize(uEye - vWorldPos);
	vec3 h = normalize(l + v);

	float diffuse = max(dot(n, l), 0.0);
	float specular = diffuse > 0.0 ? pow(max(dot(n, h), 0.0), 64.0) : 0.0;

	// Environment maps are not sampled; reflective modes brighten towards the sky.
	vec3 base = mix(uColor, vec3(0.8), uReflect);
	vec3 ambient = 0.2 * base;
	vec3 lit = (0.7 * diffuse) * base + vec3(0.4 * specular);

	float shadow = shadowFactor();
	vec3 color = ambient + (1.0 - shadow) * lit;
	if (uRedShadow && shadow > 0.0) {
		color = vec3(0.8, 0.1, 0.1) * (0.3 + 0.7 * diffuse);
	}
	FragColor = vec4(color, 1.0);
}
`

const wireVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;
uniform mat4 uAspect;

void main() {
	gl_Position = uAspect * uProj * uView * uModel * vec4(aPos, 1.0);
}
`

const wireFragmentSrc = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`

// The depth pass stores linear distance to the light over the far plane.
const shadowVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uModel;
uniform mat4 uShadow;

out vec3 vWorldPos;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	gl_Position = uShadow * world;
}
`

const shadowFragmentSrc = `
#version 410 core

in vec3 vWorldPos;

uniform vec3 uLight;
uniform float uFar;

void main() {
	gl_FragDepth = length(vWorldPos - uLight) / uFar;
}
`
