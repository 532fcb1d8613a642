// Package umbral implements the Umbral threshold proxy re-encryption
// scheme over secp256k1.
//
// Alice (the delegator) encrypts data under her own public key, then
// splits a re-encryption key towards Bob into n fragments distributed to
// semi-trusted proxies. Any t proxies can each transform the ciphertext's
// capsule; Bob verifies the resulting capsule fragments, combines them,
// and decrypts with his own secret key. No proxy, and no coalition of
// fewer than t proxies, learns Alice's key, Bob's key, or the plaintext.
//
// The flow, for a 2-of-3 delegation:
//
//	alice := keys.NewSecretKey(rand)
//	signer := keys.NewSigner(keys.NewSecretKey(rand))
//	bob := keys.NewSecretKey(rand)
//
//	capsule, ciphertext, _ := umbral.Encrypt(rand, alice.PublicKey(), plaintext)
//
//	kfrags, _ := umbral.GenerateKFrags(rand, alice, signer, bob.PublicKey(), 2, 3)
//	// ... distribute kfrags[i].Unverified() to proxy i ...
//
//	// each proxy:
//	vkf, _ := kfrag.Verify(signer.VerifyingKey(), alice.PublicKey(), bob.PublicKey())
//	cfrag, _ := umbral.Reencrypt(rand, capsule, vkf, nil)
//
//	// Bob, with any two of the three cfrags:
//	v0, _ := cfrag0.Verify(capsule, signer.VerifyingKey(), alice.PublicKey(), bob.PublicKey(), nil)
//	v1, _ := cfrag1.Verify(capsule, signer.VerifyingKey(), alice.PublicKey(), bob.PublicKey(), nil)
//	plaintext, _ := umbral.DecryptReencrypted(bob, alice.PublicKey(), capsule, 2,
//		[]*umbral.VerifiedCapsuleFrag{v0, v1}, ciphertext)
//
// All operations are pure functions over their inputs and safe to run
// concurrently; the only shared resource is the randomness source, which
// can be wrapped in pool.LockedReader when shared between goroutines.
package umbral
